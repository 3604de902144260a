package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"checkpoints/internal/app"
)

var (
	home       string
	configPath string
	logLevel   string
	verbose    bool
	ephemeral  bool
	appCtx     *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "checkpoints",
		Short:        "Gearbox and bounded square root checkpoints",
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return usageError{err}
			}
			appCtx, err = app.New(cfg)
			if err != nil {
				return usageError{err}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Close()
			}
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.checkpoints)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "shorthand for --log-level=debug")
	root.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep cars in memory only")

	root.AddCommand(newCmd(), shiftCmd(), statusCmd(), listCmd(), deleteCmd(), sqrtCmd(), demoCmd())
	return root
}

// loadConfig resolves the config file and layers flags over it.
func loadConfig() (*app.Config, error) {
	path := configPath
	if path == "" {
		base := home
		if base == "" {
			base = os.Getenv(app.EnvHome)
		}
		if base == "" {
			base = app.DefaultConfig().Home
		}
		path = filepath.Join(base, app.ConfigFilename)
	}

	cfg, err := app.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if home != "" {
		cfg.Home = home
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if ephemeral {
		cfg.Ephemeral = true
	}
	return cfg, nil
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

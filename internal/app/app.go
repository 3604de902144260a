package app

import (
	"go.uber.org/zap"

	"checkpoints/internal/logging"
)

// App is the runtime context shared by commands.
type App struct {
	Config *Config
	Logger *zap.Logger
	*Wire
}

// New builds the logger and dependency graph for cfg.
func New(cfg *Config) (*App, error) {
	if err := cfg.ExpandHome(); err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	w, err := NewWire(*cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Debug("app ready",
		zap.String("home", cfg.Home),
		zap.Bool("ephemeral", cfg.Ephemeral))
	return &App{Config: cfg, Logger: logger, Wire: w}, nil
}

// Close flushes buffered log entries.
func (a *App) Close() {
	_ = a.Logger.Sync()
}

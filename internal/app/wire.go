package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"checkpoints/internal/domain"
	carsvc "checkpoints/internal/services/car"
	rootsvc "checkpoints/internal/services/root"
	"checkpoints/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Car   domain.CarService
	Roots domain.RootService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, logger *zap.Logger) (*Wire, error) {
	var cars domain.CarStore
	if cfg.Ephemeral {
		cars = store.NewMemoryCarStore()
	} else {
		if cfg.Home == "" {
			return nil, fmt.Errorf("no home directory configured")
		}
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, err
		}
		cars = store.NewCarFileStore(cfg.Home)
	}

	return &Wire{
		Car:   carsvc.New(cars, logger),
		Roots: rootsvc.New(logger),
	}, nil
}

package domain

import (
	interfaces "checkpoints/internal/domain/interfaces"
	types "checkpoints/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	CarID       = types.CarID
	Fingerprint = types.Fingerprint
	Car         = types.Car
	Direction   = types.Direction
	ShiftResult = types.ShiftResult
	GearError   = types.GearError
	SqrtError   = types.SqrtError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CarStore      = interfaces.CarStore
	CarService    = interfaces.CarService
	RootService   = interfaces.RootService
	ShiftObserver = interfaces.ShiftObserver
)

// Constants and errors re-exported from the types subpackage.
const (
	MinGear = types.MinGear
	MaxGear = types.MaxGear

	Up   = types.Up
	Down = types.Down

	AboveMax   = types.AboveMax
	BelowMin   = types.BelowMin
	OutOfRange = types.OutOfRange

	OutOfBounds = types.OutOfBounds
	NoRoot      = types.NoRoot
)

var (
	ErrUnknownDirection = types.ErrUnknownDirection
	ErrCarNotFound      = types.ErrCarNotFound
	ErrInvalidCar       = types.ErrInvalidCar
)

// ParseDirection accepts "up" or "down" in any case.
func ParseDirection(s string) (Direction, error) { return types.ParseDirection(s) }

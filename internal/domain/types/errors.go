package types

import "errors"

// GearError is the closed set of gearbox failures.
type GearError int

const (
	// AboveMax rejects an upward shift at MaxGear.
	AboveMax GearError = iota + 1
	// BelowMin rejects a downward shift at MinGear.
	BelowMin
	// OutOfRange rejects a gearbox constructed outside [MinGear, MaxGear].
	OutOfRange
)

func (e GearError) Error() string {
	switch e {
	case AboveMax:
		return "gear cannot be above 10"
	case BelowMin:
		return "gear cannot be below 0"
	case OutOfRange:
		return "gear must be between 0 and 10"
	default:
		return "unknown gear error"
	}
}

// SqrtError is the closed set of integer square root failures.
type SqrtError int

const (
	// OutOfBounds rejects input outside [1, 10000].
	OutOfBounds SqrtError = iota + 1
	// NoRoot reports that no integer squares to the input.
	NoRoot
)

func (e SqrtError) Error() string {
	switch e {
	case OutOfBounds:
		return "number out of bounds (1-10000)"
	case NoRoot:
		return "no integer root"
	default:
		return "unknown sqrt error"
	}
}

var (
	// ErrUnknownDirection is returned by ParseDirection.
	ErrUnknownDirection = errors.New("unknown direction")
	// ErrCarNotFound is returned when a car id has no stored record.
	ErrCarNotFound = errors.New("car not found")
	// ErrInvalidCar is returned when car attributes fail validation.
	ErrInvalidCar = errors.New("invalid car")
)

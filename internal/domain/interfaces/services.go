package interfaces

import (
	"context"

	domaintypes "checkpoints/internal/domain/types"
)

// ShiftObserver is told about every shift attempt before it is evaluated.
type ShiftObserver func(direction domaintypes.Direction, gear int)

// CarService creates cars and moves their gears.
type CarService interface {
	CreateCar(ctx context.Context, model string, seats, gear int) (domaintypes.Car, error)
	ShiftGear(
		ctx context.Context,
		id domaintypes.CarID,
		direction domaintypes.Direction,
		times int,
		observe ShiftObserver,
	) (domaintypes.ShiftResult, error)
	GetCar(ctx context.Context, id domaintypes.CarID) (domaintypes.Car, error)
	ListCars(ctx context.Context) ([]domaintypes.Car, error)
	DeleteCar(ctx context.Context, id domaintypes.CarID) error
}

// RootService answers bounded integer square root queries.
type RootService interface {
	SquareRoot(ctx context.Context, n int) (int, error)
}

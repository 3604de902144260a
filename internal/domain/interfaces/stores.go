package interfaces

import domaintypes "checkpoints/internal/domain/types"

// CarStore persists cars between invocations.
type CarStore interface {
	SaveCar(car domaintypes.Car) error
	LoadCar(id domaintypes.CarID) (domaintypes.Car, bool, error)
	ListCars() ([]domaintypes.Car, error)
	DeleteCar(id domaintypes.CarID) error
}

package store

import (
	"sync"

	"checkpoints/internal/domain"
)

// MemoryCarStore keeps cars in memory only. State is lost on process exit.
type MemoryCarStore struct {
	mu   sync.RWMutex
	cars map[domain.CarID]domain.Car
}

// NewMemoryCarStore returns an empty MemoryCarStore.
func NewMemoryCarStore() *MemoryCarStore {
	return &MemoryCarStore{cars: make(map[domain.CarID]domain.Car)}
}

func (s *MemoryCarStore) SaveCar(car domain.Car) error {
	s.mu.Lock()
	s.cars[car.ID] = car
	s.mu.Unlock()
	return nil
}

func (s *MemoryCarStore) LoadCar(id domain.CarID) (domain.Car, bool, error) {
	s.mu.RLock()
	car, ok := s.cars[id]
	s.mu.RUnlock()
	return car, ok, nil
}

func (s *MemoryCarStore) ListCars() ([]domain.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedCars(s.cars), nil
}

func (s *MemoryCarStore) DeleteCar(id domain.CarID) error {
	s.mu.Lock()
	delete(s.cars, id)
	s.mu.Unlock()
	return nil
}

var _ domain.CarStore = (*MemoryCarStore)(nil)

package store

import (
	"path/filepath"
	"sort"
	"sync"

	"checkpoints/internal/domain"
)

const carsFilename = "cars.json"

// CarFileStore persists cars to a single sealed JSON file.
type CarFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewCarFileStore returns a CarFileStore rooted at dir.
func NewCarFileStore(dir string) *CarFileStore {
	return &CarFileStore{dir: dir}
}

// SaveCar inserts or replaces car.
func (s *CarFileStore) SaveCar(car domain.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := s.load()
	if err != nil {
		return err
	}
	cars[car.ID] = car
	return writeJSON(s.path(), cars, 0o600)
}

// LoadCar retrieves the car stored under id.
func (s *CarFileStore) LoadCar(id domain.CarID) (domain.Car, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := s.load()
	if err != nil {
		return domain.Car{}, false, err
	}
	car, ok := cars[id]
	return car, ok, nil
}

// ListCars returns every stored car ordered by creation time, then id.
func (s *CarFileStore) ListCars() ([]domain.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := s.load()
	if err != nil {
		return nil, err
	}
	return sortedCars(cars), nil
}

// DeleteCar removes id. Deleting an unknown id is not an error.
func (s *CarFileStore) DeleteCar(id domain.CarID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cars, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := cars[id]; !ok {
		return nil
	}
	delete(cars, id)
	return writeJSON(s.path(), cars, 0o600)
}

func (s *CarFileStore) path() string { return filepath.Join(s.dir, carsFilename) }

// load must be called with s.mu held.
func (s *CarFileStore) load() (map[domain.CarID]domain.Car, error) {
	cars := map[domain.CarID]domain.Car{}
	if err := readJSON(s.path(), &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func sortedCars(m map[domain.CarID]domain.Car) []domain.Car {
	out := make([]domain.Car, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedUTC != out[j].CreatedUTC {
			return out[i].CreatedUTC < out[j].CreatedUTC
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Compile-time assertion that CarFileStore implements domain.CarStore.
var _ domain.CarStore = (*CarFileStore)(nil)

package car

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkpoints/internal/core/gearbox"
	"checkpoints/internal/domain"
)

// ErrInvalidTimes is returned when ShiftGear is asked for fewer than one shift.
var ErrInvalidTimes = errors.New("shift count must be at least 1")

// Service manages stored cars.
type Service struct {
	store  domain.CarStore
	logger *zap.Logger
	now    func() time.Time
	newID  func() domain.CarID
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how new car ids are minted.
func WithIDGenerator(gen func() domain.CarID) Option {
	return func(s *Service) { s.newID = gen }
}

// New returns a car service backed by store. A nil logger discards output.
func New(store domain.CarStore, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:  store,
		logger: logger.Named("car"),
		now:    time.Now,
		newID:  func() domain.CarID { return domain.CarID(uuid.NewString()) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateCar validates the attributes, stores a new car and returns it.
func (s *Service) CreateCar(ctx context.Context, model string, seats, gear int) (domain.Car, error) {
	if err := ctx.Err(); err != nil {
		return domain.Car{}, err
	}
	model = strings.TrimSpace(model)
	if model == "" {
		return domain.Car{}, fmt.Errorf("%w: model is required", domain.ErrInvalidCar)
	}
	if seats < 1 {
		return domain.Car{}, fmt.Errorf("%w: seats must be at least 1, got %d", domain.ErrInvalidCar, seats)
	}
	if _, err := gearbox.New(gear); err != nil {
		return domain.Car{}, fmt.Errorf("%w: initial gear %d: %w", domain.ErrInvalidCar, gear, err)
	}

	now := s.now().UTC().Unix()
	car := domain.Car{
		ID:         s.newID(),
		Model:      model,
		Seats:      seats,
		Gear:       gear,
		CreatedUTC: now,
		UpdatedUTC: now,
	}
	if err := s.store.SaveCar(car); err != nil {
		return domain.Car{}, fmt.Errorf("saving car: %w", err)
	}
	s.logger.Info("car created",
		zap.String("id", car.ID.String()),
		zap.String("model", car.Model),
		zap.Int("seats", car.Seats),
		zap.Int("gear", car.Gear))
	return car, nil
}

// ShiftGear applies up to times shifts in direction to the car id.
//
// Shifting stops at the first rejected attempt. Shifts that succeeded before
// it are persisted and the returned result reflects them, alongside the
// rejection error. observe, when non-nil, is called before every attempt.
func (s *Service) ShiftGear(
	ctx context.Context,
	id domain.CarID,
	direction domain.Direction,
	times int,
	observe domain.ShiftObserver,
) (domain.ShiftResult, error) {
	if times < 1 {
		return domain.ShiftResult{}, ErrInvalidTimes
	}
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return domain.ShiftResult{}, err
	}

	log := s.logger.With(zap.String("id", id.String()), zap.Stringer("direction", direction))
	box, err := gearbox.New(car.Gear, gearbox.WithObserver(func(d domain.Direction, gear int) {
		log.Debug("about to move gear", zap.Int("gear", gear))
		if observe != nil {
			observe(d, gear)
		}
	}))
	if err != nil {
		// The stored gear was validated on create; reaching here means the
		// file was edited by hand with a valid checksum.
		return domain.ShiftResult{}, fmt.Errorf("car %s has invalid gear %d: %w", id, car.Gear, err)
	}

	res := domain.ShiftResult{Direction: direction, From: car.Gear}
	var shiftErr error
	for res.Attempts < times {
		if err := ctx.Err(); err != nil {
			shiftErr = err
			break
		}
		res.Attempts++
		if err := box.Shift(direction); err != nil {
			shiftErr = err
			break
		}
	}

	res.To = box.Gear()
	if res.To != car.Gear {
		car.Gear = res.To
		car.UpdatedUTC = s.now().UTC().Unix()
		if err := s.store.SaveCar(car); err != nil {
			return domain.ShiftResult{}, fmt.Errorf("saving car: %w", err)
		}
	}
	res.Car = car

	if shiftErr != nil {
		log.Warn("shift rejected",
			zap.Int("gear", res.To),
			zap.Int("attempts", res.Attempts),
			zap.Error(shiftErr))
		return res, shiftErr
	}
	log.Info("gear shifted", zap.Int("from", res.From), zap.Int("to", res.To))
	return res, nil
}

// GetCar returns the stored car or ErrCarNotFound.
func (s *Service) GetCar(ctx context.Context, id domain.CarID) (domain.Car, error) {
	if err := ctx.Err(); err != nil {
		return domain.Car{}, err
	}
	car, ok, err := s.store.LoadCar(id)
	if err != nil {
		return domain.Car{}, fmt.Errorf("loading car %s: %w", id, err)
	}
	if !ok {
		return domain.Car{}, fmt.Errorf("%w: %s", domain.ErrCarNotFound, id)
	}
	return car, nil
}

// ListCars returns every stored car, oldest first.
func (s *Service) ListCars(ctx context.Context) ([]domain.Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListCars()
}

// DeleteCar removes the stored car or returns ErrCarNotFound.
func (s *Service) DeleteCar(ctx context.Context, id domain.CarID) error {
	if _, err := s.GetCar(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteCar(id); err != nil {
		return fmt.Errorf("deleting car %s: %w", id, err)
	}
	s.logger.Info("car deleted", zap.String("id", id.String()))
	return nil
}

// Compile-time assertion that Service implements domain.CarService.
var _ domain.CarService = (*Service)(nil)

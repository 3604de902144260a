package gearbox

import (
	"checkpoints/internal/domain"
)

// Observer is notified before each shift attempt is evaluated.
type Observer func(direction domain.Direction, gear int)

// Gearbox holds a gear value within [MinGear, MaxGear].
type Gearbox struct {
	gear    int
	observe Observer
}

// Option configures a Gearbox.
type Option func(*Gearbox)

// WithObserver installs a pre-transition hook. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(g *Gearbox) { g.observe = o }
}

// New returns a gearbox in the given initial gear.
func New(initial int, opts ...Option) (*Gearbox, error) {
	if !Valid(initial) {
		return nil, domain.OutOfRange
	}
	g := &Gearbox{gear: initial}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Gear returns the current gear.
func (g *Gearbox) Gear() int { return g.gear }

// Shift moves one step in direction. On error the gear is unchanged.
func (g *Gearbox) Shift(direction domain.Direction) error {
	if g.observe != nil {
		g.observe(direction, g.gear)
	}
	next, err := Next(g.gear, direction)
	if err != nil {
		return err
	}
	g.gear = next
	return nil
}

// Next is the transition table: it returns the gear reached from gear by one
// shift in direction, or the reason the shift is rejected.
func Next(gear int, direction domain.Direction) (int, error) {
	switch direction {
	case domain.Up:
		if gear >= domain.MaxGear {
			return gear, domain.AboveMax
		}
		return gear + 1, nil
	case domain.Down:
		if gear <= domain.MinGear {
			return gear, domain.BelowMin
		}
		return gear - 1, nil
	default:
		return gear, domain.ErrUnknownDirection
	}
}

// Valid reports whether gear lies within [MinGear, MaxGear].
func Valid(gear int) bool {
	return gear >= domain.MinGear && gear <= domain.MaxGear
}

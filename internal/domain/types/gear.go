package types

import (
	"fmt"
	"strings"
)

// Gear bounds. A gear value is valid when MinGear <= g <= MaxGear.
const (
	MinGear = 0
	MaxGear = 10
)

// Direction is a single-step shift request.
type Direction int

const (
	Up Direction = iota + 1
	Down
)

// String returns "up" or "down".
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "up" or "down" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ShiftResult describes the outcome of a ShiftGear call.
//
// Attempts counts every shift tried, including a rejected final one.
type ShiftResult struct {
	Car       Car       `json:"car"`
	Direction Direction `json:"direction"`
	From      int       `json:"from"`
	To        int       `json:"to"`
	Attempts  int       `json:"attempts"`
}

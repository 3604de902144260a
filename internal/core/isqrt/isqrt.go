// Package isqrt finds exact integer square roots over a bounded domain.
package isqrt

import "checkpoints/internal/domain"

// Input bounds accepted by Root.
const (
	MinInput = 1
	MaxInput = 10_000
)

// Root returns the non-negative integer i with i*i == n.
//
// It fails with OutOfBounds when n lies outside [MinInput, MaxInput] and with
// NoRoot when n is not a perfect square.
func Root(n int) (int, error) {
	if n < MinInput || n > MaxInput {
		return 0, domain.OutOfBounds
	}
	for i := 0; i <= n; i++ {
		sq := i * i
		if sq == n {
			return i, nil
		}
		if sq > n {
			break
		}
	}
	return 0, domain.NoRoot
}

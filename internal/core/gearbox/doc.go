// Package gearbox implements the bounded gear state machine.
//
// States are the integers MinGear..MaxGear. An upward shift moves n to n+1 for
// n < MaxGear and a downward shift moves n to n-1 for n > MinGear. Shifting up
// at MaxGear or down at MinGear is rejected with AboveMax or BelowMin and
// leaves the state unchanged. There is no terminal state.
//
// Concurrency: Gearbox is NOT safe for concurrent use. Each instance is owned
// by a single caller; copy the value returned by Gear rather than sharing the
// pointer.
package gearbox

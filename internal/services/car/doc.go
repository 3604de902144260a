// Package car creates cars and drives their gearboxes.
//
// Each ShiftGear call loads the stored car, rebuilds a gearbox from its gear,
// applies the requested shifts one at a time and writes the result back. The
// stored record is the sole owner of the gear value; callers receive copies.
package car

package types

// CarID identifies a stored car.
type CarID string

// String returns the string form of the identifier.
func (id CarID) String() string { return string(id) }

// Fingerprint is a short digest of a car record presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Package store provides persistence for cars.
//
// CarFileStore serialises all cars as JSON in a single file under the user's
// configured home directory. Every file is wrapped in a versioned envelope
// carrying a BLAKE2b-256 checksum of the payload, so a truncated or edited
// file surfaces as ErrCorrupted instead of silently resetting state. Writes go
// through a temp file and rename. All methods are concurrency-safe via
// internal locking.
//
// MemoryCarStore is the map-backed equivalent used for throwaway runs.
package store

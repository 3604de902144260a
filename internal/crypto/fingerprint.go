package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"checkpoints/internal/domain"
)

// Sum returns the BLAKE2b-256 digest of b.
func Sum(b []byte) [blake2b.Size256]byte {
	return blake2b.Sum256(b)
}

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 6 bytes (12 hex chars).
func Fingerprint(b []byte) domain.Fingerprint {
	sum := Sum(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:6]))
}

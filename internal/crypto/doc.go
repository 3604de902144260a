// Package crypto exposes the digest helpers used by checkpoints.
//
// Contents
//
//   - BLAKE2b-256 digests guarding stored files against corruption (Sum)
//   - Short fingerprints of car records for display (Fingerprint)
package crypto

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"checkpoints/internal/crypto"
)

// The current supported version of the envelope format stored on disk.
const envelopeFormatVersion = 1

// ErrCorrupted is returned when a stored file fails its checksum.
var ErrCorrupted = errors.New("store file corrupted (checksum mismatch)")

// ErrUnsupportedVersion is returned for envelopes written in any format
// other than envelopeFormatVersion.
var ErrUnsupportedVersion = errors.New("unsupported store format version")

// envelope is the on-disk JSON structure wrapping every payload.
type envelope struct {
	V       int             `json:"v"`
	Sum     []byte          `json:"sum"`
	Payload json.RawMessage `json:"payload"`
}

// sealJSON encodes v and wraps it in a checksummed envelope.
func sealJSON(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	sum := crypto.Sum(payload)
	return json.MarshalIndent(envelope{
		V:       envelopeFormatVersion,
		Sum:     sum[:],
		Payload: payload,
	}, "", "  ")
}

// openJSON verifies an envelope and decodes its payload into out.
//
// The payload is compacted before hashing since indentation of the outer
// document also reflows it.
func openJSON(b []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if env.V != envelopeFormatVersion {
		return fmt.Errorf("%w %d", ErrUnsupportedVersion, env.V)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, env.Payload); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	sum := crypto.Sum(compact.Bytes())
	if !bytes.Equal(sum[:], env.Sum) {
		return ErrCorrupted
	}
	return json.Unmarshal(compact.Bytes(), out)
}

// readJSON reads a sealed file into out; a missing file leaves out untouched.
func readJSON(path string, out any) error {
	b, err := readFile(path)
	if err != nil {
		return err
	}
	if b == nil { // file didn't exist
		return nil
	}
	return openJSON(b, out)
}

// writeJSON seals v and writes it atomically.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := sealJSON(v)
	if err != nil {
		return err
	}
	return writeFile(path, b, mode)
}

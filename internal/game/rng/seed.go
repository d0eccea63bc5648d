package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a fresh seed from crypto/rand for a new simulation session.
// The seed is masked to 31 bits so it survives round-trips through save
// formats that store it as a signed 32-bit integer.
//
// Postcondition: returns a seed in [0, 2^31) or a non-nil error.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("rng: reading random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]) & 0x7fffffff), nil
}

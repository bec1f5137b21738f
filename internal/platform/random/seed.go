// Package random provides seed generation for the game's target draw.
//
// It uses crypto/rand for high-entropy seeds so that games without an
// explicit seed are unpredictable, while seeded games stay reproducible.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

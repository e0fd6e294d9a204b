// Package id produces opaque identifiers for request correlation.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const rawIDBytes = 12

type Generator interface {
	NewID() (string, error)
}

// RandomGenerator emits 24-char hex IDs. Stateless and safe for
// concurrent use.
type RandomGenerator struct {
	source io.Reader
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{source: rand.Reader}
}

func (g *RandomGenerator) NewID() (string, error) {
	var buf [rawIDBytes]byte
	if _, err := io.ReadFull(g.source, buf[:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf[:]), nil
}

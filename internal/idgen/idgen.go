// Package idgen produces the opaque booking codes handed to guests.
package idgen

import "math/rand"

// DefaultAlphabet matches the letters-only codes printed on confirmation
// emails; ambiguity with digits is avoided on purpose.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Random generates fixed-length codes drawn uniformly from its alphabet.
// Uniqueness is statistical only; the reservation table's unique index is
// the real collision guard.
type Random struct {
	alphabet string
}

func New(alphabet string) *Random {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	return &Random{alphabet: alphabet}
}

func (g *Random) Generate(length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = g.alphabet[rand.Intn(len(g.alphabet))]
	}
	return string(buf)
}

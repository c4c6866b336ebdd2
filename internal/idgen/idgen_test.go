package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Length(t *testing.T) {
	g := New("")

	for _, length := range []int{1, 8, 32} {
		assert.Len(t, g.Generate(length), length)
	}
}

func TestGenerate_AlphabetMembership(t *testing.T) {
	g := New("XYZ")

	for i := 0; i < 100; i++ {
		id := g.Generate(12)
		for _, ch := range id {
			assert.True(t, strings.ContainsRune("XYZ", ch), "unexpected character %q in %s", ch, id)
		}
	}
}

func TestGenerate_DefaultAlphabet(t *testing.T) {
	g := New("")

	id := g.Generate(50)
	for _, ch := range id {
		assert.True(t, strings.ContainsRune(DefaultAlphabet, ch))
	}
}

func TestGenerate_ZeroLength(t *testing.T) {
	g := New("")

	assert.Equal(t, "", g.Generate(0))
}

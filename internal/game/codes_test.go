package game

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCodeFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	format := regexp.MustCompile(`^[A-Z0-9]{6}$`)

	for i := 0; i < 200; i++ {
		code := NewCode(rng)
		assert.Regexp(t, format, code)
	}
}

func TestNewCodeDeterministicWithSeed(t *testing.T) {
	a := NewCode(rand.New(rand.NewSource(99)))
	b := NewCode(rand.New(rand.NewSource(99)))
	assert.Equal(t, a, b)
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123", "ABC123"},
		{"  AbC123 ", "ABC123"},
		{"XYZXYZ", "XYZXYZ"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCode(tt.in))
	}
}

package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWordBankEmptyCatalog(t *testing.T) {
	_, err := NewWordBank(nil, rand.New(rand.NewSource(1)))
	assert.Error(t, err)

	_, err = NewWordBank([]string{}, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestWordBankPickFromCatalog(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}
	bank, err := NewWordBank(words, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	catalog := map[string]bool{"alpha": true, "beta": true, "gamma": true}
	for i := 0; i < 100; i++ {
		assert.True(t, catalog[bank.Pick()])
	}
}

func TestWordBankPickCoversCatalog(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	bank, err := NewWordBank(words, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	seen := make(map[string]int)
	for i := 0; i < 5000; i++ {
		seen[bank.Pick()]++
	}

	// Uniform draw: each word lands near 1000 picks
	for _, w := range words {
		assert.Greater(t, seen[w], 800, "word %q drawn too rarely", w)
		assert.Less(t, seen[w], 1200, "word %q drawn too often", w)
	}
}

func TestDefaultWordsNotEmpty(t *testing.T) {
	assert.NotEmpty(t, DefaultWords)
}

package game

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func makePlayerIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestPickSpiesExactCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, tc := range []struct{ players, spies int }{
		{3, 1}, {5, 2}, {9, 3}, {4, 3},
	} {
		ids := makePlayerIDs(tc.players)
		spies := PickSpies(rng, ids, tc.spies)

		assert.Len(t, spies, tc.spies)

		seen := make(map[uuid.UUID]bool)
		valid := make(map[uuid.UUID]bool)
		for _, id := range ids {
			valid[id] = true
		}
		for _, s := range spies {
			assert.False(t, seen[s], "duplicate spy selected")
			assert.True(t, valid[s], "spy is not a member")
			seen[s] = true
		}
	}
}

func TestPickSpiesCountClampedToMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ids := makePlayerIDs(3)

	spies := PickSpies(rng, ids, 5)
	assert.Len(t, spies, 3)
}

func TestPickSpiesDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ids := makePlayerIDs(6)
	orig := make([]uuid.UUID, len(ids))
	copy(orig, ids)

	PickSpies(rng, ids, 2)
	assert.Equal(t, orig, ids)
}

// Every member should be picked roughly equally often; insertion order
// must carry no bias.
func TestPickSpiesUniformCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	ids := makePlayerIDs(6)

	const rounds = 6000
	counts := make(map[uuid.UUID]int)
	for i := 0; i < rounds; i++ {
		for _, s := range PickSpies(rng, ids, 2) {
			counts[s]++
		}
	}

	// Expected: rounds * 2 / 6 = 2000 per member
	for _, id := range ids {
		assert.Greater(t, counts[id], 1750, "member picked too rarely")
		assert.Less(t, counts[id], 2250, "member picked too often")
	}
}

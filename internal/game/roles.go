package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// SpyPickFunc выбирает count шпионов из списка игроков; стор вызывает
// её внутри транзакции старта раунда
type SpyPickFunc func(playerIDs []uuid.UUID, count int) []uuid.UUID

// PickSpies выбирает count различных участников равномерно по всем
// подмножествам размера count. Частичный Фишер-Йетс вместо
// "перебрасывай при дубликате": завершается за count шагов даже когда
// count близок к числу участников.
func PickSpies(rng *rand.Rand, playerIDs []uuid.UUID, count int) []uuid.UUID {
	if count > len(playerIDs) {
		count = len(playerIDs)
	}

	ids := make([]uuid.UUID, len(playerIDs))
	copy(ids, playerIDs)

	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids[:count]
}

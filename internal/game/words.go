package game

import (
	"errors"
	"math/rand"
)

// Каталог по умолчанию: места, которые нужно угадывать
var DefaultWords = []string{
	"مدرسة", "مستشفى", "مطعم", "سينما", "حديقة",
	"شاطئ", "مطار", "فندق", "سوق", "ملعب",
	"مكتبة", "متحف", "مقهى", "محطة", "مسجد",
	"منتزه", "مسبح", "مول", "مصنع", "مزرعة",
}

type WordBank struct {
	words []string
	rng   *rand.Rand
}

// NewWordBank возвращает ошибку на пустом каталоге: это дефект
// конфигурации при старте, а не runtime-условие
func NewWordBank(words []string, rng *rand.Rand) (*WordBank, error) {
	if len(words) == 0 {
		return nil, errors.New("word bank is empty")
	}
	return &WordBank{words: words, rng: rng}, nil
}

// Pick выбирает слово равномерно случайно
func (b *WordBank) Pick() string {
	return b.words[b.rng.Intn(len(b.words))]
}

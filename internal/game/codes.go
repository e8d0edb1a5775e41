package game

import (
	"math/rand"
	"strings"

	"github.com/mshehata/spyroom/internal/models"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewCode генерирует 6-символьный код комнаты. Уникальность кода
// проверяет вызывающая сторона, генератор только формирует токен.
func NewCode(rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(models.CodeLength)
	for i := 0; i < models.CodeLength; i++ {
		b.WriteByte(codeAlphabet[rng.Intn(len(codeAlphabet))])
	}
	return b.String()
}

// NormalizeCode приводит пользовательский ввод к каноническому виду
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

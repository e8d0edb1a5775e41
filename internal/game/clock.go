package game

import "time"

// Clock отдаёт текущее время; в тестах подменяется фейком
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

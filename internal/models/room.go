package models

import (
	"time"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

// Границы конфигурации комнаты
const (
	MinPlayers = 3
	MaxPlayers = 9

	MinSpies = 1
	MaxSpies = 3

	MinTimeLimit = 60  // секунды
	MaxTimeLimit = 600 // секунды

	CodeLength = 6
)

type Room struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code        string     `gorm:"size:6;not null;index"`
	HostID      uuid.UUID  `gorm:"type:uuid;not null"`
	PlayerCount int        `gorm:"not null"`
	SpyCount    int        `gorm:"not null"`
	TimeLimit   int        `gorm:"not null"` // длительность раунда в секундах
	Word        string     `gorm:"not null"`
	Status      RoomStatus `gorm:"not null;default:'waiting';check:status IN ('waiting','playing','finished')"`
	StartTime   *time.Time
	CreatedAt   time.Time

	// Связи
	Players []Player `gorm:"foreignKey:RoomID"`
}

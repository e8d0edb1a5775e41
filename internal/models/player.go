package models

import (
	"time"

	"github.com/google/uuid"
)

type Player struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RoomID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_room_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_room_user"`
	Name      string    `gorm:"not null"`
	IsSpy     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/mshehata/spyroom/internal/models"
)

// RoomView — проекция состояния комнаты для конкретного участника.
// Шпион не получает слово; до старта раунда TimeLeftMS == nil.
type RoomView struct {
	Room     RoomSummary  `json:"room"`
	Players  []PlayerView `json:"players"`
	IsSpy    bool         `json:"is_spy"`
	Word     *string      `json:"word"`
	TimeLeft *int64       `json:"time_left_ms"`
}

type RoomSummary struct {
	ID          uuid.UUID         `json:"id"`
	Code        string            `json:"code"`
	HostID      uuid.UUID         `json:"host_id"`
	PlayerCount int               `json:"player_count"`
	SpyCount    int               `json:"spy_count"`
	TimeLimit   int               `json:"time_limit"`
	Status      models.RoomStatus `json:"status"`
	StartTime   *time.Time        `json:"start_time,omitempty"`
}

type PlayerView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	IsSpy bool      `json:"is_spy"`
}

// BuildView — чистая функция от (room, players, requester, now),
// состояние не мутирует, безопасна для поллинга
func BuildView(room *models.Room, players []models.Player, requester uuid.UUID, now time.Time) (*RoomView, error) {
	var me *models.Player
	for i := range players {
		if players[i].UserID == requester {
			me = &players[i]
			break
		}
	}
	if me == nil {
		return nil, ErrNotInRoom
	}

	view := &RoomView{
		Room: RoomSummary{
			ID:          room.ID,
			Code:        room.Code,
			HostID:      room.HostID,
			PlayerCount: room.PlayerCount,
			SpyCount:    room.SpyCount,
			TimeLimit:   room.TimeLimit,
			Status:      room.Status,
			StartTime:   room.StartTime,
		},
		Players: make([]PlayerView, len(players)),
		IsSpy:   me.IsSpy,
	}

	for i, p := range players {
		view.Players[i] = PlayerView{ID: p.ID, Name: p.Name, IsSpy: p.IsSpy}
	}

	if !me.IsSpy {
		word := room.Word
		view.Word = &word
	}

	if room.StartTime != nil {
		left := int64(room.TimeLimit)*1000 - now.Sub(*room.StartTime).Milliseconds()
		if left < 0 {
			left = 0
		}
		view.TimeLeft = &left
	}

	return view, nil
}

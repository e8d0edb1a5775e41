package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mshehata/spyroom/internal/game"
	"github.com/mshehata/spyroom/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateRoomWithHost вставляет комнату и её хоста одной транзакцией:
// читатель никогда не увидит комнату без первого игрока
func (d *Database) CreateRoomWithHost(ctx context.Context, room *models.Room, host *models.Player) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Room{}).
			Where("code = ? AND status <> ?", room.Code, models.StatusFinished).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return game.ErrCodeTaken
		}

		if err := tx.Create(room).Error; err != nil {
			// Частичный уникальный индекс по активным кодам ловит
			// гонку двух create с одинаковым кодом
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return game.ErrCodeTaken
			}
			return err
		}

		host.RoomID = room.ID
		return tx.Create(host).Error
	})
}

// JoinRoom проверяет вместимость и уникальность участника и вставляет
// игрока под блокировкой строки комнаты. Конкурирующие join на
// последнее место сериализуются: оба пройти не могут.
func (d *Database) JoinRoom(ctx context.Context, code string, userID uuid.UUID, name string) (*models.Player, error) {
	var player *models.Player

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		// Код завершённой комнаты может быть переиспользован, ищем
		// только среди активных
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "code = ? AND status <> ?", code, models.StatusFinished).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.ErrRoomNotFound
			}
			return err
		}

		if room.Status != models.StatusWaiting {
			return game.ErrAlreadyStarted
		}

		var players []models.Player
		if err := tx.Where("room_id = ?", room.ID).Find(&players).Error; err != nil {
			return err
		}

		if len(players) >= room.PlayerCount {
			return game.ErrRoomFull
		}
		for _, p := range players {
			if p.UserID == userID {
				return game.ErrAlreadyInRoom
			}
		}

		player = &models.Player{RoomID: room.ID, UserID: userID, Name: name}
		return tx.Create(player).Error
	})
	if err != nil {
		return nil, err
	}

	return player, nil
}

// StartRoom назначает роли и переводит комнату в playing одной
// транзакцией: читатель видит либо waiting без ролей, либо playing с
// полностью назначенными ролями. Повторный start упирается в проверку
// статуса под блокировкой и получает ErrAlreadyStarted.
func (d *Database) StartRoom(ctx context.Context, roomID, hostID uuid.UUID, pick game.SpyPickFunc, now time.Time) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "id = ?", roomID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.ErrRoomNotFound
			}
			return err
		}

		if room.HostID != hostID {
			return game.ErrNotHost
		}
		if room.Status != models.StatusWaiting {
			return game.ErrAlreadyStarted
		}

		var players []models.Player
		if err := tx.Where("room_id = ?", room.ID).Find(&players).Error; err != nil {
			return err
		}
		if len(players) < room.PlayerCount {
			return game.ErrNotEnoughPlayers
		}

		ids := make([]uuid.UUID, len(players))
		for i, p := range players {
			ids[i] = p.ID
		}

		spies := make(map[uuid.UUID]bool, room.SpyCount)
		for _, id := range pick(ids, room.SpyCount) {
			spies[id] = true
		}

		for i := range players {
			if !spies[players[i].ID] {
				continue
			}
			err := tx.Model(&players[i]).Update("is_spy", true).Error
			if err != nil {
				return err
			}
		}

		return tx.Model(&room).Updates(map[string]interface{}{
			"status":     models.StatusPlaying,
			"start_time": now,
		}).Error
	})
}

func (d *Database) GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	var room models.Room
	err := d.db.WithContext(ctx).First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (d *Database) GetRoomByCode(ctx context.Context, code string) (*models.Room, error) {
	var room models.Room
	err := d.db.WithContext(ctx).
		Where("code = ? AND status <> ?", code, models.StatusFinished).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// GetRoomSnapshot читает комнату и её игроков одной транзакцией под
// SHARE-блокировкой строки комнаты: конкурирующий start (FOR UPDATE)
// сериализуется со снимком, читатель видит либо waiting без ролей,
// либо playing с полностью назначенными ролями — смешанного состояния
// не бывает
func (d *Database) GetRoomSnapshot(ctx context.Context, id uuid.UUID) (*models.Room, []models.Player, error) {
	var room models.Room
	var players []models.Player

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			First(&room, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return game.ErrRoomNotFound
			}
			return err
		}

		return tx.Where("room_id = ?", room.ID).
			Order("created_at ASC").
			Find(&players).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return &room, players, nil
}

// ListPlayers возвращает игроков в порядке вступления
func (d *Database) ListPlayers(ctx context.Context, roomID uuid.UUID) ([]models.Player, error) {
	var players []models.Player
	err := d.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

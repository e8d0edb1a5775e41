package services

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mshehata/spyroom/internal/game"
	"github.com/mshehata/spyroom/internal/models"
)

// RoomStore — долговечное хранилище комнат. Проверка-и-запись в
// JoinRoom и StartRoom атомарны per-room (см. internal/database).
type RoomStore interface {
	CreateRoomWithHost(ctx context.Context, room *models.Room, host *models.Player) error
	JoinRoom(ctx context.Context, code string, userID uuid.UUID, name string) (*models.Player, error)
	StartRoom(ctx context.Context, roomID, hostID uuid.UUID, pick game.SpyPickFunc, now time.Time) error
	GetRoom(ctx context.Context, id uuid.UUID) (*models.Room, error)
	GetRoomByCode(ctx context.Context, code string) (*models.Room, error)
	ListPlayers(ctx context.Context, roomID uuid.UUID) ([]models.Player, error)

	// GetRoomSnapshot читает комнату и её игроков как единый снимок:
	// конкурирующий start виден либо целиком, либо никак
	GetRoomSnapshot(ctx context.Context, id uuid.UUID) (*models.Room, []models.Player, error)
}

const maxCodeRetries = 5

type CreateParams struct {
	PlayerCount int
	SpyCount    int
	TimeLimit   int // секунды
}

type RoomService struct {
	store RoomStore
	words *game.WordBank
	clock game.Clock

	rng    *rand.Rand
	randMu sync.Mutex
}

func NewRoomService(store RoomStore, words *game.WordBank, clock game.Clock, rng *rand.Rand) *RoomService {
	return &RoomService{store: store, words: words, clock: clock, rng: rng}
}

// Create создает комнату и сажает хоста первым игроком.
// Слово выбирается при создании, а не при старте раунда.
func (s *RoomService) Create(ctx context.Context, hostID uuid.UUID, p CreateParams) (*models.Room, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	s.randMu.Lock()
	word := s.words.Pick()
	s.randMu.Unlock()

	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		s.randMu.Lock()
		code := game.NewCode(s.rng)
		s.randMu.Unlock()

		room := &models.Room{
			Code:        code,
			HostID:      hostID,
			PlayerCount: p.PlayerCount,
			SpyCount:    p.SpyCount,
			TimeLimit:   p.TimeLimit,
			Word:        word,
			Status:      models.StatusWaiting,
		}
		host := &models.Player{
			UserID: hostID,
			Name:   "Player 1",
		}

		err := s.store.CreateRoomWithHost(ctx, room, host)
		if err == game.ErrCodeTaken {
			continue
		}
		if err != nil {
			return nil, err
		}
		return room, nil
	}

	return nil, fmt.Errorf("could not allocate a unique room code")
}

// Join добавляет участника в комнату по коду
func (s *RoomService) Join(ctx context.Context, userID uuid.UUID, code, name string) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, fmt.Errorf("%w: display name required", game.ErrInvalidConfig)
	}

	player, err := s.store.JoinRoom(ctx, game.NormalizeCode(code), userID, name)
	if err != nil {
		return uuid.Nil, err
	}
	return player.RoomID, nil
}

// Start назначает роли и переводит комнату в playing. Только хост,
// только при полном составе.
func (s *RoomService) Start(ctx context.Context, userID, roomID uuid.UUID) error {
	pick := func(playerIDs []uuid.UUID, count int) []uuid.UUID {
		s.randMu.Lock()
		defer s.randMu.Unlock()
		return game.PickSpies(s.rng, playerIDs, count)
	}
	return s.store.StartRoom(ctx, roomID, userID, pick, s.clock.Now())
}

// State возвращает проекцию комнаты для запрашивающего участника
func (s *RoomService) State(ctx context.Context, roomID, userID uuid.UUID) (*game.RoomView, error) {
	room, players, err := s.store.GetRoomSnapshot(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return game.BuildView(room, players, userID, s.clock.Now())
}

func validateParams(p CreateParams) error {
	if p.PlayerCount < models.MinPlayers || p.PlayerCount > models.MaxPlayers {
		return fmt.Errorf("%w: player count must be between %d and %d",
			game.ErrInvalidConfig, models.MinPlayers, models.MaxPlayers)
	}
	if p.SpyCount < models.MinSpies || p.SpyCount > models.MaxSpies {
		return fmt.Errorf("%w: spy count must be between %d and %d",
			game.ErrInvalidConfig, models.MinSpies, models.MaxSpies)
	}
	// Иначе возможен вырожденный раунд, где слово не держит никто
	if p.SpyCount >= p.PlayerCount {
		return fmt.Errorf("%w: spy count must be less than player count", game.ErrInvalidConfig)
	}
	if p.TimeLimit < models.MinTimeLimit || p.TimeLimit > models.MaxTimeLimit {
		return fmt.Errorf("%w: time limit must be between %d and %d seconds",
			game.ErrInvalidConfig, models.MinTimeLimit, models.MaxTimeLimit)
	}
	return nil
}

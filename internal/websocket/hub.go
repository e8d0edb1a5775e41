package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MessageType определяет типы сообщений
type MessageType string

const (
	// Системные типы
	TypePing MessageType = "ping"
	TypePong MessageType = "pong"

	// Подписка на комнату
	TypeSubscribe   MessageType = "subscribe"
	TypeUnsubscribe MessageType = "unsubscribe"

	// Состояние комнаты изменилось: клиент перечитывает
	// GET /rooms/:id/state
	TypeRoomUpdate MessageType = "room_update"

	TypeError MessageType = "error"
)

type Message struct {
	Type      MessageType `json:"type"`
	RoomID    *uuid.UUID  `json:"room_id,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type Hub struct {
	clients map[uuid.UUID]*Client

	// Подписчики по комнатам
	rooms map[uuid.UUID]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	// Уведомления об изменении комнаты
	roomUpdates chan uuid.UUID

	mu sync.RWMutex

	// Контекст для graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub создает новый Hub
func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:     make(map[uuid.UUID]*Client),
		rooms:       make(map[uuid.UUID]map[uuid.UUID]*Client),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		roomUpdates: make(chan uuid.UUID, 64),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Run запускает hub
func (h *Hub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case roomID := <-h.roomUpdates:
			h.broadcastRoomUpdate(roomID)

		case <-ticker.C:
			h.ping()
		}
	}
}

// Stop останавливает hub
func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		client.Conn.Close()
	}
}

// Register регистрирует нового клиента
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister отменяет регистрацию клиента
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// NotifyRoom сообщает подписчикам комнаты, что её состояние
// изменилось (join, старт раунда). Неблокирующий: при переполненном
// канале уведомление теряется, клиент догонит поллингом.
func (h *Hub) NotifyRoom(roomID uuid.UUID) {
	select {
	case h.roomUpdates <- roomID:
	default:
		log.Warn().Str("room_id", roomID.String()).Msg("room update queue full, dropping notification")
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client
	log.Debug().
		Str("client_id", client.ID.String()).
		Str("user_id", client.UserID.String()).
		Msg("websocket client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; ok {
		for roomID := range client.Rooms {
			h.removeFromRoomUnsafe(client, roomID)
		}

		delete(h.clients, client.ID)
		close(client.Send)

		log.Debug().
			Str("client_id", client.ID.String()).
			Str("user_id", client.UserID.String()).
			Msg("websocket client unregistered")
	}
}

// Subscribe подписывает клиента на обновления комнаты
func (h *Hub) Subscribe(client *Client, roomID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[uuid.UUID]*Client)
	}

	h.rooms[roomID][client.ID] = client
	client.mu.Lock()
	client.Rooms[roomID] = true
	client.mu.Unlock()
}

// Unsubscribe отписывает клиента от комнаты
func (h *Hub) Unsubscribe(client *Client, roomID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeFromRoomUnsafe(client, roomID)
}

func (h *Hub) removeFromRoomUnsafe(client *Client, roomID uuid.UUID) {
	if room, ok := h.rooms[roomID]; ok {
		if _, ok := room[client.ID]; ok {
			delete(room, client.ID)
			client.mu.Lock()
			delete(client.Rooms, roomID)
			client.mu.Unlock()

			if len(room) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
}

func (h *Hub) broadcastRoomUpdate(roomID uuid.UUID) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := Message{
		Type:      TypeRoomUpdate,
		RoomID:    &roomID,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	if room, ok := h.rooms[roomID]; ok {
		for _, client := range room {
			select {
			case client.Send <- data:
			default:
				log.Warn().Str("client_id", client.ID.String()).Msg("client send channel full")
			}
		}
	}
}

func (h *Hub) ping() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := Message{
		Type:      TypePing,
		Timestamp: time.Now(),
	}

	if data, err := json.Marshal(msg); err == nil {
		for _, client := range h.clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// RoomSubscribers возвращает количество подписчиков комнаты
func (h *Hub) RoomSubscribers(roomID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[roomID])
}

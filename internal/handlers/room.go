package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/mshehata/spyroom/internal/game"
	"github.com/mshehata/spyroom/internal/handlers/dto"
	"github.com/mshehata/spyroom/internal/middleware"
	"github.com/mshehata/spyroom/internal/models"
	"github.com/mshehata/spyroom/internal/services"
	ws "github.com/mshehata/spyroom/internal/websocket"
)

type RoomService interface {
	Create(ctx context.Context, hostID uuid.UUID, p services.CreateParams) (*models.Room, error)
	Join(ctx context.Context, userID uuid.UUID, code, name string) (uuid.UUID, error)
	Start(ctx context.Context, userID, roomID uuid.UUID) error
	State(ctx context.Context, roomID, userID uuid.UUID) (*game.RoomView, error)
}

type RoomHandler struct {
	svc       RoomService
	hub       *ws.Hub
	publicURL string
}

func NewRoomHandler(svc RoomService, hub *ws.Hub, publicURL string) *RoomHandler {
	return &RoomHandler{svc: svc, hub: hub, publicURL: publicURL}
}

// CreateRoom создает новую комнату, хост садится первым игроком
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.svc.Create(c.Request.Context(), userID, services.CreateParams{
		PlayerCount: req.PlayerCount,
		SpyCount:    req.SpyCount,
		TimeLimit:   req.TimeLimitMinutes * 60,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateRoomResponse{
		RoomID: room.ID.String(),
		Code:   room.Code,
	})
}

// JoinRoom добавляет участника в комнату по коду
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roomID, err := h.svc.Join(c.Request.Context(), userID, req.Code, req.Name)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.hub.NotifyRoom(roomID)

	c.JSON(http.StatusOK, dto.JoinRoomResponse{RoomID: roomID.String()})
}

// StartGame запускает раунд; доступно только хосту
func (h *RoomHandler) StartGame(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	if err := h.svc.Start(c.Request.Context(), userID, roomID); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.hub.NotifyRoom(roomID)

	c.JSON(http.StatusOK, gin.H{"message": "game started"})
}

// GetRoomState возвращает проекцию комнаты для запрашивающего.
// Идемпотентен, пригоден для поллинга.
func (h *RoomHandler) GetRoomState(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	view, err := h.svc.State(c.Request.Context(), roomID, userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetRoomQR отдаёт PNG с QR-кодом приглашения в комнату
func (h *RoomHandler) GetRoomQR(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}

	view, err := h.svc.State(c.Request.Context(), roomID, userID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	png, err := qrcode.Encode(h.publicURL+"/join?code="+view.Room.Code, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate qr code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// statusFor переводит доменные ошибки в HTTP статусы
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrRoomNotFound), errors.Is(err, game.ErrNotInRoom):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrRoomFull),
		errors.Is(err, game.ErrAlreadyInRoom),
		errors.Is(err, game.ErrAlreadyStarted),
		errors.Is(err, game.ErrNotHost),
		errors.Is(err, game.ErrNotEnoughPlayers):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

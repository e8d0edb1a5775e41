package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshehata/spyroom/internal/game"
	"github.com/mshehata/spyroom/internal/middleware"
	"github.com/mshehata/spyroom/internal/models"
	"github.com/mshehata/spyroom/internal/services"
	ws "github.com/mshehata/spyroom/internal/websocket"
)

type stubRoomService struct {
	createFn func(hostID uuid.UUID, p services.CreateParams) (*models.Room, error)
	joinFn   func(userID uuid.UUID, code, name string) (uuid.UUID, error)
	startFn  func(userID, roomID uuid.UUID) error
	stateFn  func(roomID, userID uuid.UUID) (*game.RoomView, error)
}

func (s *stubRoomService) Create(_ context.Context, hostID uuid.UUID, p services.CreateParams) (*models.Room, error) {
	return s.createFn(hostID, p)
}

func (s *stubRoomService) Join(_ context.Context, userID uuid.UUID, code, name string) (uuid.UUID, error) {
	return s.joinFn(userID, code, name)
}

func (s *stubRoomService) Start(_ context.Context, userID, roomID uuid.UUID) error {
	return s.startFn(userID, roomID)
}

func (s *stubRoomService) State(_ context.Context, roomID, userID uuid.UUID) (*game.RoomView, error) {
	return s.stateFn(roomID, userID)
}

func newTestRouter(svc RoomService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewRoomHandler(svc, ws.NewHub(), "http://localhost:8080")

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
	})
	r.POST("/rooms", h.CreateRoom)
	r.POST("/rooms/join", h.JoinRoom)
	r.POST("/rooms/:id/start", h.StartGame)
	r.GET("/rooms/:id/state", h.GetRoomState)
	r.GET("/rooms/:id/qr", h.GetRoomQR)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRoomHandler(t *testing.T) {
	userID := uuid.New()
	roomID := uuid.New()

	svc := &stubRoomService{
		createFn: func(hostID uuid.UUID, p services.CreateParams) (*models.Room, error) {
			assert.Equal(t, userID, hostID)
			// Минуты из запроса приходят в сервис секундами
			assert.Equal(t, 300, p.TimeLimit)
			return &models.Room{ID: roomID, Code: "AB12CD"}, nil
		},
	}
	r := newTestRouter(svc, userID)

	w := doJSON(r, http.MethodPost, "/rooms", gin.H{
		"player_count":       5,
		"spy_count":          2,
		"time_limit_minutes": 5,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, roomID.String(), resp["room_id"])
	assert.Equal(t, "AB12CD", resp["code"])
}

func TestCreateRoomHandlerRejectsBadBody(t *testing.T) {
	r := newTestRouter(&stubRoomService{}, uuid.New())

	// Binding отсеивает значения вне диапазона до вызова сервиса
	w := doJSON(r, http.MethodPost, "/rooms", gin.H{
		"player_count":       2,
		"spy_count":          1,
		"time_limit_minutes": 5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/rooms", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinRoomHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"room full", game.ErrRoomFull, http.StatusConflict},
		{"already started", game.ErrAlreadyStarted, http.StatusConflict},
		{"already a member", game.ErrAlreadyInRoom, http.StatusConflict},
		{"not found", game.ErrRoomNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubRoomService{
				joinFn: func(uuid.UUID, string, string) (uuid.UUID, error) {
					return uuid.Nil, tt.err
				},
			}
			r := newTestRouter(svc, uuid.New())

			w := doJSON(r, http.MethodPost, "/rooms/join", gin.H{"code": "AB12CD", "name": "Нур"})
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestJoinRoomHandlerSuccess(t *testing.T) {
	roomID := uuid.New()
	svc := &stubRoomService{
		joinFn: func(_ uuid.UUID, code, name string) (uuid.UUID, error) {
			assert.Equal(t, "ab12cd", code)
			assert.Equal(t, "Нур", name)
			return roomID, nil
		},
	}
	r := newTestRouter(svc, uuid.New())

	w := doJSON(r, http.MethodPost, "/rooms/join", gin.H{"code": "ab12cd", "name": "Нур"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, roomID.String(), resp["room_id"])
}

func TestStartGameHandler(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()

	t.Run("invalid room id", func(t *testing.T) {
		r := newTestRouter(&stubRoomService{}, userID)
		w := doJSON(r, http.MethodPost, "/rooms/not-a-uuid/start", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not the host", func(t *testing.T) {
		svc := &stubRoomService{
			startFn: func(uuid.UUID, uuid.UUID) error { return game.ErrNotHost },
		}
		r := newTestRouter(svc, userID)
		w := doJSON(r, http.MethodPost, "/rooms/"+roomID.String()+"/start", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("started", func(t *testing.T) {
		svc := &stubRoomService{
			startFn: func(u, rid uuid.UUID) error {
				assert.Equal(t, userID, u)
				assert.Equal(t, roomID, rid)
				return nil
			},
		}
		r := newTestRouter(svc, userID)
		w := doJSON(r, http.MethodPost, "/rooms/"+roomID.String()+"/start", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetRoomStateHandler(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()

	t.Run("not a member", func(t *testing.T) {
		svc := &stubRoomService{
			stateFn: func(uuid.UUID, uuid.UUID) (*game.RoomView, error) {
				return nil, game.ErrNotInRoom
			},
		}
		r := newTestRouter(svc, userID)
		w := doJSON(r, http.MethodGet, "/rooms/"+roomID.String()+"/state", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("spy view omits the word", func(t *testing.T) {
		start := time.Now()
		left := int64(45000)
		svc := &stubRoomService{
			stateFn: func(rid, uid uuid.UUID) (*game.RoomView, error) {
				assert.Equal(t, roomID, rid)
				assert.Equal(t, userID, uid)
				return &game.RoomView{
					Room: game.RoomSummary{
						ID:     roomID,
						Code:   "AB12CD",
						Status: models.StatusPlaying,
						// остальное несущественно для сериализации
						StartTime: &start,
					},
					IsSpy:    true,
					TimeLeft: &left,
				}, nil
			},
		}
		r := newTestRouter(svc, userID)
		w := doJSON(r, http.MethodGet, "/rooms/"+roomID.String()+"/state", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			IsSpy    bool    `json:"is_spy"`
			Word     *string `json:"word"`
			TimeLeft *int64  `json:"time_left_ms"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.IsSpy)
		assert.Nil(t, resp.Word)
		require.NotNil(t, resp.TimeLeft)
		assert.Equal(t, left, *resp.TimeLeft)
	})
}

func TestGetRoomQRHandler(t *testing.T) {
	roomID := uuid.New()
	svc := &stubRoomService{
		stateFn: func(uuid.UUID, uuid.UUID) (*game.RoomView, error) {
			return &game.RoomView{Room: game.RoomSummary{ID: roomID, Code: "AB12CD"}}, nil
		},
	}
	r := newTestRouter(svc, uuid.New())

	w := doJSON(r, http.MethodGet, "/rooms/"+roomID.String()+"/qr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

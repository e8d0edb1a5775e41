package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/mshehata/spyroom/internal/handlers"
	"github.com/mshehata/spyroom/internal/middleware"
	"github.com/mshehata/spyroom/pkg/auth"
)

func APIEndpoints(r *gin.Engine, authH *handlers.AuthHandler, roomH *handlers.RoomHandler,
	wsH *handlers.WebSocketHandler, jwtMgr *auth.JWTManager, rdb *redis.Client) {

	r.Use(cors.Default())

	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
	}

	// API endpoints
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtMgr, rdb))
	{
		api.GET("/me", authH.GetMe)

		api.POST("/rooms", roomH.CreateRoom)
		api.POST("/rooms/join", roomH.JoinRoom)
		api.POST("/rooms/:id/start", roomH.StartGame)
		api.GET("/rooms/:id/state", roomH.GetRoomState)
		api.GET("/rooms/:id/qr", roomH.GetRoomQR)
	}

	// WebSocket: пуш room_update подписчикам комнаты
	r.GET("/ws", middleware.WSAuthMiddleware(jwtMgr, rdb), wsH.HandleWebSocket)
}

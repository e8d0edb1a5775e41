package server

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mshehata/spyroom/internal/config"
	"github.com/mshehata/spyroom/internal/database"
	"github.com/mshehata/spyroom/internal/game"
	"github.com/mshehata/spyroom/internal/handlers"
	"github.com/mshehata/spyroom/internal/services"
	ws "github.com/mshehata/spyroom/internal/websocket"
	"github.com/mshehata/spyroom/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	Config     *config.Config
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
	Hub        *ws.Hub
}

func NewServer() *Server {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid REDIS_URL")
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	words, err := game.NewWordBank(game.DefaultWords, rng)
	if err != nil {
		// Пустой каталог — дефект конфигурации при старте
		log.Fatal().Err(err).Msg("word bank init failed")
	}

	roomSvc := services.NewRoomService(dbConn, words, game.SystemClock{}, rng)

	hub := ws.NewHub()
	go hub.Run()

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, rdb)
	roomH := handlers.NewRoomHandler(roomSvc, hub, cfg.PublicURL)
	wsH := handlers.NewWebSocketHandler(hub)

	router := gin.Default()
	APIEndpoints(router, authH, roomH, wsH, jwtMgr, rdb)

	return &Server{
		Router:     router,
		Config:     cfg,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
		Hub:        hub,
	}
}

func (s *Server) Run() {
	log.Info().Str("port", s.Config.Port).Msg("server starting")
	if err := s.Router.Run(":" + s.Config.Port); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

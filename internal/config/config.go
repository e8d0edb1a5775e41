package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	DatabaseURL string        `env:"DATABASE_URL,required"`
	RedisURL    string        `env:"REDIS_URL,required"`
	JWTSecret   string        `env:"JWT_SECRET,required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Базовый URL для join-ссылок в QR-кодах
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Info().Msg(".env not found, using environment variables")
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

package database

import (
	"errors"

	"github.com/mshehata/spyroom/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func (d *Database) Connect(dsn string) error {
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	err = db.AutoMigrate(&models.User{}, &models.Room{}, &models.Player{})
	if err != nil {
		return err
	}

	// Уникальность кода только среди активных комнат: код завершённой
	// комнаты можно переиспользовать
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_rooms_active_code
		ON rooms (code) WHERE status <> 'finished'`).Error
	if err != nil {
		return err
	}

	d.db = db

	return nil
}

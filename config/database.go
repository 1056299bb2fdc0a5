package config

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() error {
	dsn := Getenv("DB_URL", "")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(GetenvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(GetenvInt("DB_MAX_OPEN_CONNS", 50))
	sqlDB.SetConnMaxLifetime(time.Duration(GetenvInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)) * time.Minute)

	DB = db
	return nil
}

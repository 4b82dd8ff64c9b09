package config

import (
	"log"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	var db *gorm.DB
	// The database container may still be starting; retry with backoff
	// before giving up.
	err := retry.Do(
		func() error {
			var openErr error
			db, openErr = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
				Logger: logger.Default.LogMode(logLevel),
			})
			return openErr
		},
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("database connection attempt %d failed: %v", n+1, err)
		}),
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Package sqlite provides the SQLite connection bootstrap used for
// development and testing.
package sqlite

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dishcovery/v1/internal/infrastructure/config"
)

// Connect opens the SQLite database at the configured path. An empty or
// "memory" path yields a shared in-memory database.
func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	gormLogLevel := gormlogger.Silent
	if cfg.App.Debug {
		gormLogLevel = gormlogger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	logger.Info("Connected to SQLite", zap.String("dsn", cfg.GetDSN()))

	return db, nil
}

package db

import (
	"database/sql"
	"fmt"
	"time"

	"wdr/internal/config"
	"wdr/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connection pairs the gorm handle with its pool for shutdown.
type Connection struct {
	DB    *gorm.DB
	sqlDB *sql.DB
}

func Connect(dbConfig *config.DBConfig) (*Connection, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  BuildDSN(dbConfig),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	pool := dbConfig.Pool
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTime) * time.Minute)

	return &Connection{DB: db, sqlDB: sqlDB}, nil
}

func (c *Connection) Close() {
	if c == nil || c.sqlDB == nil {
		return
	}
	if err := c.sqlDB.Close(); err != nil {
		logger.Warnf("⚠️ Error closing DB: %v", err)
		return
	}
	logger.Info("🔌 DB connection closed.")
}

func BuildDSN(dbConfig *config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)
}

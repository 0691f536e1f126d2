package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"careerfair/internal/config"
)

// InitDatabase opens the PostgreSQL connection pool described by cfg and
// returns a GORM handle. TranslateError is enabled so constraint violations
// surface as gorm.ErrDuplicatedKey regardless of driver.
func InitDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap db: %w", err)
	}

	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates every table of the career-fair schema,
// association tables included.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Candidate{},
		&Host{},
		&Company{},
		&Recruiter{},
		&Position{},
		&Event{},
		&Application{},
		&Interview{},
		&Organize{},
		&Invite{},
		&Attend{},
		&Approve{},
	)
}

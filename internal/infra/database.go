package infra

import (
	"embed"
	"fmt"

	"restogestion/internal/config"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// NewDatabase establishes a GORM connection backed by pgx and applies the
// embedded SQL migrations. Schema is managed by goose only, never AutoMigrate.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migraciones: %w", err)
	}
	return db, nil
}

// RunMigrations applies every pending migration. It is idempotent.
func RunMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(sqlDB, "migrations")
}

// gooseLogger routes goose output to zerolog. Fatalf does not exit; the
// error is returned from goose.Up.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	log.Info().Str("component", "goose").Msgf(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	log.Error().Str("component", "goose").Msgf(format, v...)
}

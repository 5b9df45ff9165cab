package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"profilehub/internal/config"
)

// OpenGorm opens the GORM handle used by the user and question repositories.
func OpenGorm(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	level := gormlogger.Silent
	if cfg.IsDevelopment() {
		level = gormlogger.Info
	}

	// No ping: an unreachable database is reported per request as a connection error.
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(level),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	// Functions run many short-lived invocations; keep the pool small.
	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	logger.Info("gorm handle ready", zap.String("host", cfg.DBEndpoint), zap.String("database", cfg.DBName))
	return db, nil
}

// OpenPool creates the pgx pool used by the notification repository.
// Connections are dialed lazily, so an unreachable database surfaces on Acquire.
func OpenPool(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}
	poolCfg.MaxConns = 5
	poolCfg.MaxConnLifetime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	logger.Info("pgx pool ready", zap.Int32("max_conns", poolCfg.MaxConns))
	return pool, nil
}

// Close releases both database handles. Either may be nil.
func Close(gdb *gorm.DB, pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
	if gdb != nil {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

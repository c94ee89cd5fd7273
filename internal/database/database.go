package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MosaabBleik/menu-service/internal/config"
	"github.com/MosaabBleik/menu-service/internal/store"
)

// Connect opens a gorm connection to the configured postgres database.
func Connect(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxConns)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// ConnectPool opens a pgx pool to the configured postgres database.
func ConnectPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// NewClient connects with the configured driver and returns the store
// client together with a function that releases the connection.
func NewClient(ctx context.Context, cfg *config.Config, opts ...store.Option) (store.Client, func(), error) {
	slog.Info("connecting to store",
		"project_id", cfg.ProjectID,
		"instance_id", cfg.InstanceID,
		"database_id", cfg.DatabaseID,
		"driver", cfg.StoreDriver,
	)

	var (
		client store.Client
		closer func()
	)
	switch cfg.StoreDriver {
	case config.DriverPgx:
		pool, err := ConnectPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		client, closer = store.NewPgxClient(pool, opts...), pool.Close
	default:
		db, err := Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		client, closer = store.NewGormClient(db, opts...), func() { _ = sqlDB.Close() }
	}

	if cfg.AutoSchema {
		if err := store.EnsureSchema(ctx, client); err != nil {
			closer()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
	}
	return client, closer, nil
}

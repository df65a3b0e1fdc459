package integration_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"envios/internal/pkg/config"
	"envios/internal/pkg/postgres"
	"envios/pkg/logger/zap_adapter"
	"envios/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// Repository packages live at internal/repository/<name>.
const migrationsDir = "../../../migrations"

var (
	querierInstance *querier.Querier
	setupErr        error
	setupOnce       sync.Once
)

// GetQuerier connects once per test binary and applies the goose migrations.
// Tests are skipped when POSTGRES_HOST is not set.
func GetQuerier(t *testing.T) *querier.Querier {
	t.Helper()

	cfg := databaseFromEnv()
	if cfg.Host == "" {
		t.Skip("POSTGRES_HOST is not set")
	}

	setupOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		pool, err := postgres.NewConnPool(ctx, zap_adapter.NewNop(), cfg)
		if err != nil {
			setupErr = err
			return
		}

		if err := migrate(pool); err != nil {
			setupErr = err
			return
		}

		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})

	require.NoError(t, setupErr, "integration database setup")
	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	q := GetQuerier(t)
	if setupSql == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := q.Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier(t).Exec(ctx, `
		TRUNCATE TABLE sessions, shipment_status_history;
	`)
	require.NoError(t, err)
}

func migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func databaseFromEnv() *config.Database {
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

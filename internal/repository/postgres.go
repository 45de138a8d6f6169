package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of *pgxpool.Pool the postgres repositories use.
// pgxmock pools satisfy it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// NewPostgresPool opens and verifies a pgx connection pool
func NewPostgresPool(ctx context.Context, url string, maxConns int32) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if maxConns > 0 {
		config.MaxConns = maxConns
	}
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS moods (
	id BIGSERIAL PRIMARY KEY,
	mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 5),
	note TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_moods_created_at ON moods(created_at);

CREATE TABLE IF NOT EXISTS sleep_records (
	id BIGSERIAL PRIMARY KEY,
	date DATE NOT NULL,
	sleep_time TIMESTAMPTZ NOT NULL,
	wake_time TIMESTAMPTZ NOT NULL,
	total_sleep INTEGER NOT NULL,
	quality INTEGER NOT NULL CHECK (quality BETWEEN 1 AND 5),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_sleep_records_date ON sleep_records(date);

CREATE TABLE IF NOT EXISTS screen_time_records (
	id BIGSERIAL PRIMARY KEY,
	date TIMESTAMPTZ NOT NULL,
	minutes INTEGER NOT NULL CHECK (minutes >= 0),
	category TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_screen_time_records_date ON screen_time_records(date);

CREATE TABLE IF NOT EXISTS food_intake (
	id BIGSERIAL PRIMARY KEY,
	date DATE NOT NULL UNIQUE,
	breakfast BOOLEAN NOT NULL DEFAULT FALSE,
	lunch BOOLEAN NOT NULL DEFAULT FALSE,
	snacks BOOLEAN NOT NULL DEFAULT FALSE,
	dinner BOOLEAN NOT NULL DEFAULT FALSE,
	water_intake INTEGER NOT NULL DEFAULT 0 CHECK (water_intake BETWEEN 0 AND 4),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

type postgresStore struct {
	db         DB
	moods      *moodRepository
	sleep      *sleepRepository
	screenTime *screenTimeRepository
	food       *foodIntakeRepository
}

// NewPostgresStore wraps db in the postgres implementations of every
// repository
func NewPostgresStore(db DB) Store {
	return &postgresStore{
		db:         db,
		moods:      &moodRepository{db: db},
		sleep:      &sleepRepository{db: db},
		screenTime: &screenTimeRepository{db: db},
		food:       &foodIntakeRepository{db: db},
	}
}

func (s *postgresStore) Moods() MoodRepository            { return s.moods }
func (s *postgresStore) Sleep() SleepRepository           { return s.sleep }
func (s *postgresStore) ScreenTime() ScreenTimeRepository { return s.screenTime }
func (s *postgresStore) FoodIntake() FoodIntakeRepository { return s.food }
func (s *postgresStore) Ping(ctx context.Context) error   { return s.db.Ping(ctx) }

func (s *postgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func (s *postgresStore) Close() error {
	s.db.Close()
	return nil
}

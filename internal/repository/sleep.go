package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dailywell/backend/internal/models"
)

const sleepColumns = "id, date, sleep_time, wake_time, total_sleep, quality, created_at"

type sleepRepository struct {
	db DB
}

// NewSleepRepository creates a postgres-backed sleep repository
func NewSleepRepository(db DB) SleepRepository {
	return &sleepRepository{db: db}
}

func (r *sleepRepository) Create(ctx context.Context, record *models.SleepRecord) (*models.SleepRecord, error) {
	created := *record
	err := r.db.QueryRow(ctx,
		`INSERT INTO sleep_records (date, sleep_time, wake_time, total_sleep, quality)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		calendarDay(record.Date), record.SleepTime, record.WakeTime, record.TotalSleep, record.Quality,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create sleep record: %w", err)
	}

	return &created, nil
}

func (r *sleepRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.SleepRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sleepColumns+` FROM sleep_records WHERE date >= $1 AND date <= $2 ORDER BY date ASC, id ASC`,
		calendarDay(start), calendarDay(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep records: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SleepRecord, error) {
		var s models.SleepRecord
		err := row.Scan(&s.ID, &s.Date, &s.SleepTime, &s.WakeTime, &s.TotalSleep, &s.Quality, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sleep records: %w", err)
	}
	return records, nil
}

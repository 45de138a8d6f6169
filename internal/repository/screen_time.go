package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dailywell/backend/internal/models"
)

const screenTimeColumns = "id, date, minutes, category, created_at"

type screenTimeRepository struct {
	db DB
}

// NewScreenTimeRepository creates a postgres-backed screen time repository
func NewScreenTimeRepository(db DB) ScreenTimeRepository {
	return &screenTimeRepository{db: db}
}

func (r *screenTimeRepository) Create(ctx context.Context, record *models.ScreenTimeRecord) (*models.ScreenTimeRecord, error) {
	created := *record
	err := r.db.QueryRow(ctx,
		`INSERT INTO screen_time_records (date, minutes, category) VALUES ($1, $2, $3) RETURNING id, created_at`,
		record.Date, record.Minutes, record.Category,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create screen time record: %w", err)
	}

	return &created, nil
}

func (r *screenTimeRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.ScreenTimeRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+screenTimeColumns+` FROM screen_time_records WHERE date >= $1 AND date <= $2 ORDER BY date ASC`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screen time records: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ScreenTimeRecord, error) {
		var s models.ScreenTimeRecord
		err := row.Scan(&s.ID, &s.Date, &s.Minutes, &s.Category, &s.CreatedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan screen time records: %w", err)
	}
	return records, nil
}

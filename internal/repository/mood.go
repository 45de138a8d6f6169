package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dailywell/backend/internal/models"
)

const moodColumns = "id, mood, note, created_at"

type moodRepository struct {
	db DB
}

// NewMoodRepository creates a postgres-backed mood repository
func NewMoodRepository(db DB) MoodRepository {
	return &moodRepository{db: db}
}

func (r *moodRepository) Create(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	createdAt := mood.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	created := *mood
	err := r.db.QueryRow(ctx,
		`INSERT INTO moods (mood, note, created_at) VALUES ($1, $2, $3) RETURNING id, created_at`,
		mood.Mood, mood.Note, createdAt,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood: %w", err)
	}

	return &created, nil
}

func (r *moodRepository) List(ctx context.Context) ([]models.Mood, error) {
	rows, err := r.db.Query(ctx, `SELECT `+moodColumns+` FROM moods ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	return collectMoods(rows)
}

func (r *moodRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Mood, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+moodColumns+` FROM moods WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at ASC`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods by date range: %w", err)
	}
	return collectMoods(rows)
}

func collectMoods(rows pgx.Rows) ([]models.Mood, error) {
	moods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Mood, error) {
		var m models.Mood
		err := row.Scan(&m.ID, &m.Mood, &m.Note, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan moods: %w", err)
	}
	return moods, nil
}

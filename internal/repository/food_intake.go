package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dailywell/backend/internal/models"
)

const foodIntakeColumns = "id, date, breakfast, lunch, snacks, dinner, water_intake, created_at, updated_at"

type foodIntakeRepository struct {
	db DB
}

// NewFoodIntakeRepository creates a postgres-backed food intake repository
func NewFoodIntakeRepository(db DB) FoodIntakeRepository {
	return &foodIntakeRepository{db: db}
}

func scanFoodIntake(row pgx.Row) (*models.FoodIntake, error) {
	var f models.FoodIntake
	err := row.Scan(&f.ID, &f.Date, &f.Breakfast, &f.Lunch, &f.Snacks, &f.Dinner, &f.WaterIntake, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *foodIntakeRepository) GetByDate(ctx context.Context, day time.Time) (*models.FoodIntake, error) {
	intake, err := scanFoodIntake(r.db.QueryRow(ctx,
		`SELECT `+foodIntakeColumns+` FROM food_intake WHERE date = $1`,
		calendarDay(day),
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food intake: %w", err)
	}
	return intake, nil
}

func (r *foodIntakeRepository) Upsert(ctx context.Context, day time.Time, update *models.UpdateFoodIntakeRequest) (*models.FoodIntake, error) {
	intake, err := r.GetByDate(ctx, day)
	if errors.Is(err, ErrNotFound) {
		intake = newFoodIntake(day)
	} else if err != nil {
		return nil, err
	}
	update.Apply(intake)

	saved, err := scanFoodIntake(r.db.QueryRow(ctx,
		`INSERT INTO food_intake (date, breakfast, lunch, snacks, dinner, water_intake, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date) DO UPDATE SET
			breakfast = EXCLUDED.breakfast,
			lunch = EXCLUDED.lunch,
			snacks = EXCLUDED.snacks,
			dinner = EXCLUDED.dinner,
			water_intake = EXCLUDED.water_intake,
			updated_at = EXCLUDED.updated_at
		RETURNING `+foodIntakeColumns,
		calendarDay(day), intake.Breakfast, intake.Lunch, intake.Snacks, intake.Dinner, intake.WaterIntake, time.Now(),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert food intake: %w", err)
	}
	return saved, nil
}

func (r *foodIntakeRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.FoodIntake, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+foodIntakeColumns+` FROM food_intake WHERE date >= $1 AND date <= $2 ORDER BY date ASC`,
		calendarDay(start), calendarDay(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list food intake: %w", err)
	}

	intakes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FoodIntake, error) {
		f, err := scanFoodIntake(row)
		if err != nil {
			return models.FoodIntake{}, err
		}
		return *f, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan food intake: %w", err)
	}
	return intakes, nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/dailywell/backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

// MoodRepository defines the interface for mood data access
type MoodRepository interface {
	Create(ctx context.Context, mood *models.Mood) (*models.Mood, error)
	List(ctx context.Context) ([]models.Mood, error)
	// ListByDateRange returns moods created in [start, end], oldest first
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Mood, error)
}

// SleepRepository defines the interface for sleep record data access
type SleepRepository interface {
	Create(ctx context.Context, record *models.SleepRecord) (*models.SleepRecord, error)
	// ListByDateRange compares calendar days, inclusive on both ends
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.SleepRecord, error)
}

// ScreenTimeRepository defines the interface for screen time data access
type ScreenTimeRepository interface {
	Create(ctx context.Context, record *models.ScreenTimeRecord) (*models.ScreenTimeRecord, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.ScreenTimeRecord, error)
}

// FoodIntakeRepository defines the interface for daily food intake data access
type FoodIntakeRepository interface {
	GetByDate(ctx context.Context, day time.Time) (*models.FoodIntake, error)
	// Upsert creates the row for day or applies the supplied fields to
	// the existing one
	Upsert(ctx context.Context, day time.Time, update *models.UpdateFoodIntakeRequest) (*models.FoodIntake, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]models.FoodIntake, error)
}

// Store bundles the repositories of one storage backend
type Store interface {
	Moods() MoodRepository
	Sleep() SleepRepository
	ScreenTime() ScreenTimeRepository
	FoodIntake() FoodIntakeRepository

	// Migrate creates any missing tables and indexes
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// calendarDay formats the local calendar day of t for date columns
func calendarDay(t time.Time) string {
	return t.Format(models.DateLayout)
}

// newFoodIntake is the row a first update of day starts from
func newFoodIntake(day time.Time) *models.FoodIntake {
	return &models.FoodIntake{Date: day}
}

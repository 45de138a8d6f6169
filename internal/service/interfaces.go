package service

import (
	"context"
	"time"

	"github.com/dailywell/backend/internal/analytics"
	"github.com/dailywell/backend/internal/models"
)

// MoodService defines the interface for mood tracking
type MoodService interface {
	AddMood(ctx context.Context, req *models.CreateMoodRequest) (*models.Mood, error)
	GetMoods(ctx context.Context) ([]models.Mood, error)
	// GetStats returns the rolling average and streaks over all moods
	GetStats(ctx context.Context) (*models.MoodStats, error)
	// GetAnalytics returns the day-of-week profile of all moods
	GetAnalytics(ctx context.Context) (*analytics.DayProfile, error)
}

// SleepService defines the interface for sleep and screen time tracking
type SleepService interface {
	CreateSleepRecord(ctx context.Context, req *models.CreateSleepRecordRequest) (*models.SleepRecord, error)
	ListSleepRecords(ctx context.Context, start, end time.Time) ([]models.SleepRecord, error)
	CreateScreenTime(ctx context.Context, req *models.CreateScreenTimeRequest) (*models.ScreenTimeRecord, error)
	ListScreenTime(ctx context.Context, start, end time.Time) ([]models.ScreenTimeRecord, error)
	GetStats(ctx context.Context) (*models.SleepStats, error)
}

// FoodService defines the interface for daily meal and water tracking
type FoodService interface {
	UpdateFoodIntake(ctx context.Context, day time.Time, req *models.UpdateFoodIntakeRequest) (*models.FoodIntake, error)
	GetFoodIntake(ctx context.Context, day time.Time) (*models.FoodIntake, error)
	ListFoodIntake(ctx context.Context, start, end time.Time) ([]models.FoodIntake, error)
}

// EntryService exposes any tracked metric as a generic entry series
type EntryService interface {
	GetEntries(ctx context.Context, kind models.EntryKind, start, end time.Time) ([]analytics.Entry, error)
}

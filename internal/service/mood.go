package service

import (
	"context"
	"fmt"

	"github.com/dailywell/backend/internal/analytics"
	"github.com/dailywell/backend/internal/logger"
	"github.com/dailywell/backend/internal/metrics"
	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/repository"
)

type moodService struct {
	moodRepo repository.MoodRepository
	opts     Options
}

// NewMoodService creates a new mood service
func NewMoodService(moodRepo repository.MoodRepository, opts Options) MoodService {
	return &moodService{
		moodRepo: moodRepo,
		opts:     opts.WithDefaults(),
	}
}

func (s *moodService) AddMood(ctx context.Context, req *models.CreateMoodRequest) (*models.Mood, error) {
	if req.Mood < 1 || req.Mood > 5 {
		return nil, invalidf("mood must be between 1 and 5, got %d", req.Mood)
	}

	mood, err := s.moodRepo.Create(ctx, &models.Mood{
		Mood:      req.Mood,
		Note:      req.Note,
		CreatedAt: s.opts.Current(),
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordEntry("mood")
	logger.Ctx(ctx).Debug("mood recorded", logger.Int64("mood_id", mood.ID), logger.Int("mood", mood.Mood))
	return mood, nil
}

func (s *moodService) GetMoods(ctx context.Context) ([]models.Mood, error) {
	moods, err := s.moodRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if moods == nil {
		moods = []models.Mood{}
	}
	return moods, nil
}

func (s *moodService) GetStats(ctx context.Context) (*models.MoodStats, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	now := s.opts.Current()
	streaks := analytics.CalculateStreaks(entries, now)

	return &models.MoodStats{
		AverageMood:   analytics.RollingAverage(entries, s.opts.WindowDays, now),
		WindowDays:    s.opts.WindowDays,
		CurrentStreak: streaks.Current,
		BestStreak:    streaks.Best,
	}, nil
}

func (s *moodService) GetAnalytics(ctx context.Context) (*analytics.DayProfile, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return nil, err
	}

	profile := analytics.ProfileDays(entries)
	return &profile, nil
}

func (s *moodService) entries(ctx context.Context) ([]analytics.Entry, error) {
	moods, err := s.moodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get moods: %w", err)
	}
	return moodEntries(moods, s.opts), nil
}

func moodEntries(moods []models.Mood, opts Options) []analytics.Entry {
	entries := make([]analytics.Entry, len(moods))
	for i, m := range moods {
		entries[i] = analytics.Entry{Value: float64(m.Mood), Timestamp: m.CreatedAt.In(opts.Location)}
	}
	return entries
}

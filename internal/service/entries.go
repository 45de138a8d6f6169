package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dailywell/backend/internal/analytics"
	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/repository"
)

type entryService struct {
	store repository.Store
	opts  Options
}

// NewEntryService creates a service that reads any tracked metric as
// a series of timestamped values
func NewEntryService(store repository.Store, opts Options) EntryService {
	return &entryService{
		store: store,
		opts:  opts.WithDefaults(),
	}
}

func (s *entryService) GetEntries(ctx context.Context, kind models.EntryKind, start, end time.Time) ([]analytics.Entry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err := checkRange(start, end); err != nil {
		return nil, err
	}
	start, end = start.In(s.opts.Location), end.In(s.opts.Location)

	var (
		entries []analytics.Entry
		err     error
	)
	switch kind {
	case models.EntryKindMood:
		entries, err = s.moodSeries(ctx, start, end)
	case models.EntryKindSleep:
		entries, err = s.sleepSeries(ctx, start, end, totalSleep)
	case models.EntryKindSleepQuality:
		entries, err = s.sleepSeries(ctx, start, end, quality)
	case models.EntryKindScreenTime:
		entries, err = s.screenSeries(ctx, start, end)
	case models.EntryKindWater:
		entries, err = s.waterSeries(ctx, start, end)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s entries: %w", kind, err)
	}
	return entries, nil
}

func (s *entryService) moodSeries(ctx context.Context, start, end time.Time) ([]analytics.Entry, error) {
	moods, err := s.store.Moods().ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return moodEntries(moods, s.opts), nil
}

func (s *entryService) sleepSeries(ctx context.Context, start, end time.Time, field sleepField) ([]analytics.Entry, error) {
	records, err := s.store.Sleep().ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return sleepEntries(records, field, s.opts), nil
}

func (s *entryService) screenSeries(ctx context.Context, start, end time.Time) ([]analytics.Entry, error) {
	records, err := s.store.ScreenTime().ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return screenTimeEntries(records, s.opts), nil
}

func (s *entryService) waterSeries(ctx context.Context, start, end time.Time) ([]analytics.Entry, error) {
	intakes, err := s.store.FoodIntake().ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	entries := make([]analytics.Entry, len(intakes))
	for i, f := range intakes {
		entries[i] = analytics.Entry{Value: float64(f.WaterIntake), Timestamp: s.opts.day(f.Date)}
	}
	return entries, nil
}

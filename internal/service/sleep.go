package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dailywell/backend/internal/analytics"
	"github.com/dailywell/backend/internal/logger"
	"github.com/dailywell/backend/internal/metrics"
	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/repository"
)

type sleepService struct {
	sleepRepo  repository.SleepRepository
	screenRepo repository.ScreenTimeRepository
	opts       Options
}

// NewSleepService creates a new sleep and screen time service
func NewSleepService(sleepRepo repository.SleepRepository, screenRepo repository.ScreenTimeRepository, opts Options) SleepService {
	return &sleepService{
		sleepRepo:  sleepRepo,
		screenRepo: screenRepo,
		opts:       opts.WithDefaults(),
	}
}

func (s *sleepService) CreateSleepRecord(ctx context.Context, req *models.CreateSleepRecordRequest) (*models.SleepRecord, error) {
	if !req.WakeTime.After(req.SleepTime) {
		return nil, invalidf("wake_time must be after sleep_time")
	}
	if req.Quality < 1 || req.Quality > 5 {
		return nil, invalidf("quality must be between 1 and 5, got %d", req.Quality)
	}

	// the night belongs to the day you wake up on unless told otherwise
	day := s.opts.day(req.WakeTime.In(s.opts.Location))
	if req.Date != "" {
		parsed, err := time.ParseInLocation(models.DateLayout, req.Date, s.opts.Location)
		if err != nil {
			return nil, invalidf("date %q is not YYYY-MM-DD", req.Date)
		}
		day = parsed
	}

	record, err := s.sleepRepo.Create(ctx, &models.SleepRecord{
		Date:       day,
		SleepTime:  req.SleepTime,
		WakeTime:   req.WakeTime,
		TotalSleep: int(req.WakeTime.Sub(req.SleepTime) / time.Minute),
		Quality:    req.Quality,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordEntry("sleep")
	logger.Ctx(ctx).Debug("sleep recorded",
		logger.String("date", day.Format(models.DateLayout)),
		logger.Int("total_sleep", record.TotalSleep),
	)
	return record, nil
}

func (s *sleepService) ListSleepRecords(ctx context.Context, start, end time.Time) ([]models.SleepRecord, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}

	records, err := s.sleepRepo.ListByDateRange(ctx, start.In(s.opts.Location), end.In(s.opts.Location))
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Date = s.opts.day(records[i].Date)
	}
	if records == nil {
		records = []models.SleepRecord{}
	}
	return records, nil
}

func (s *sleepService) CreateScreenTime(ctx context.Context, req *models.CreateScreenTimeRequest) (*models.ScreenTimeRecord, error) {
	if req.Minutes < 0 || req.Minutes > 24*60 {
		return nil, invalidf("minutes must be between 0 and 1440, got %d", req.Minutes)
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, invalidf("category is required")
	}

	record, err := s.screenRepo.Create(ctx, &models.ScreenTimeRecord{
		Date:     req.Date,
		Minutes:  req.Minutes,
		Category: category,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordEntry("screen_time")
	return record, nil
}

func (s *sleepService) ListScreenTime(ctx context.Context, start, end time.Time) ([]models.ScreenTimeRecord, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}

	records, err := s.screenRepo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Date = records[i].Date.In(s.opts.Location)
	}
	if records == nil {
		records = []models.ScreenTimeRecord{}
	}
	return records, nil
}

// GetStats compares the last window with the one before it. The
// previous window ends the day before the current one starts so no
// night is counted twice.
func (s *sleepService) GetStats(ctx context.Context) (*models.SleepStats, error) {
	now := s.opts.Current()
	currentStart := now.AddDate(0, 0, -s.opts.WindowDays)
	previousStart := now.AddDate(0, 0, -2*s.opts.WindowDays)
	previousEnd := currentStart.AddDate(0, 0, -1)

	current, err := s.sleepRepo.ListByDateRange(ctx, currentStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get current sleep records: %w", err)
	}
	previous, err := s.sleepRepo.ListByDateRange(ctx, previousStart, previousEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous sleep records: %w", err)
	}
	screen, err := s.screenRepo.ListByDateRange(ctx, currentStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get screen time records: %w", err)
	}

	avgSleep := analytics.Mean(sleepEntries(current, totalSleep, s.opts)) / 60
	prevSleep := analytics.Mean(sleepEntries(previous, totalSleep, s.opts)) / 60
	avgQuality := analytics.Mean(sleepEntries(current, quality, s.opts))
	prevQuality := analytics.Mean(sleepEntries(previous, quality, s.opts))

	screenEntries := screenTimeEntries(screen, s.opts)
	peak := analytics.FindPeakHour(screenEntries)

	return &models.SleepStats{
		AverageSleepHours:      analytics.Round(avgSleep, 1),
		SleepQuality:           analytics.Round(avgQuality, 1),
		AverageScreenTimeHours: analytics.Round(analytics.Mean(screenEntries)/60, 1),
		PeakScreenTime:         peak.Label,
		PeakScreenHour:         peak,
		Trends: models.SleepTrends{
			Sleep:   analytics.Trend(avgSleep, prevSleep),
			Quality: analytics.Trend(avgQuality, prevQuality),
		},
		WindowDays: s.opts.WindowDays,
	}, nil
}

type sleepField func(models.SleepRecord) float64

func totalSleep(r models.SleepRecord) float64 { return float64(r.TotalSleep) }
func quality(r models.SleepRecord) float64    { return float64(r.Quality) }

func sleepEntries(records []models.SleepRecord, field sleepField, opts Options) []analytics.Entry {
	entries := make([]analytics.Entry, len(records))
	for i, r := range records {
		entries[i] = analytics.Entry{Value: field(r), Timestamp: opts.day(r.Date)}
	}
	return entries
}

func screenTimeEntries(records []models.ScreenTimeRecord, opts Options) []analytics.Entry {
	entries := make([]analytics.Entry, len(records))
	for i, r := range records {
		entries[i] = analytics.Entry{Value: float64(r.Minutes), Timestamp: r.Date.In(opts.Location)}
	}
	return entries
}

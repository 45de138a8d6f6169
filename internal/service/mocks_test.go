package service

import (
	"context"
	"errors"
	"time"

	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/repository"
)

var errDatabase = errors.New("database unavailable")

// refNow is a Thursday afternoon
var refNow = time.Date(2024, 3, 14, 15, 30, 0, 0, time.UTC)

func testOptions() Options {
	return Options{
		Now:        func() time.Time { return refNow },
		Location:   time.UTC,
		WindowDays: 30,
	}
}

func utcDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func inDayRange(day, start, end time.Time) bool {
	d := day.Format(models.DateLayout)
	return d >= start.Format(models.DateLayout) && d <= end.Format(models.DateLayout)
}

func inTimeRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// mockMoodRepository is an in-memory MoodRepository
type mockMoodRepository struct {
	moods   []models.Mood
	created []*models.Mood
	err     error
}

func (m *mockMoodRepository) Create(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	if m.err != nil {
		return nil, m.err
	}
	mood.ID = int64(len(m.moods) + 1)
	m.moods = append(m.moods, *mood)
	m.created = append(m.created, mood)
	return mood, nil
}

func (m *mockMoodRepository) List(ctx context.Context) ([]models.Mood, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.moods, nil
}

func (m *mockMoodRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Mood, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.Mood
	for _, mood := range m.moods {
		if inTimeRange(mood.CreatedAt, start, end) {
			result = append(result, mood)
		}
	}
	return result, nil
}

type mockSleepRepository struct {
	records []models.SleepRecord
	err     error
}

func (m *mockSleepRepository) Create(ctx context.Context, record *models.SleepRecord) (*models.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, *record)
	return record, nil
}

func (m *mockSleepRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.SleepRecord
	for _, r := range m.records {
		if inDayRange(r.Date, start, end) {
			result = append(result, r)
		}
	}
	return result, nil
}

type mockScreenTimeRepository struct {
	records []models.ScreenTimeRecord
	err     error
}

func (m *mockScreenTimeRepository) Create(ctx context.Context, record *models.ScreenTimeRecord) (*models.ScreenTimeRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record.ID = int64(len(m.records) + 1)
	m.records = append(m.records, *record)
	return record, nil
}

func (m *mockScreenTimeRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.ScreenTimeRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.ScreenTimeRecord
	for _, r := range m.records {
		if inTimeRange(r.Date, start, end) {
			result = append(result, r)
		}
	}
	return result, nil
}

type mockFoodIntakeRepository struct {
	intakes    map[string]*models.FoodIntake
	upsertDays []time.Time
	err        error
}

func newMockFoodIntakeRepository() *mockFoodIntakeRepository {
	return &mockFoodIntakeRepository{intakes: make(map[string]*models.FoodIntake)}
}

func (m *mockFoodIntakeRepository) GetByDate(ctx context.Context, day time.Time) (*models.FoodIntake, error) {
	if m.err != nil {
		return nil, m.err
	}
	intake, ok := m.intakes[day.Format(models.DateLayout)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *intake
	return &copied, nil
}

func (m *mockFoodIntakeRepository) Upsert(ctx context.Context, day time.Time, update *models.UpdateFoodIntakeRequest) (*models.FoodIntake, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.upsertDays = append(m.upsertDays, day)

	key := day.Format(models.DateLayout)
	intake, ok := m.intakes[key]
	if !ok {
		intake = &models.FoodIntake{ID: int64(len(m.intakes) + 1), Date: utcDay(day.Year(), day.Month(), day.Day())}
		m.intakes[key] = intake
	}
	update.Apply(intake)
	copied := *intake
	return &copied, nil
}

func (m *mockFoodIntakeRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.FoodIntake, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []models.FoodIntake
	for _, f := range m.intakes {
		if inDayRange(f.Date, start, end) {
			result = append(result, *f)
		}
	}
	return result, nil
}

// mockStore bundles the in-memory repositories
type mockStore struct {
	moods  *mockMoodRepository
	sleep  *mockSleepRepository
	screen *mockScreenTimeRepository
	food   *mockFoodIntakeRepository
}

func newMockStore() *mockStore {
	return &mockStore{
		moods:  &mockMoodRepository{},
		sleep:  &mockSleepRepository{},
		screen: &mockScreenTimeRepository{},
		food:   newMockFoodIntakeRepository(),
	}
}

func (s *mockStore) Moods() repository.MoodRepository            { return s.moods }
func (s *mockStore) Sleep() repository.SleepRepository           { return s.sleep }
func (s *mockStore) ScreenTime() repository.ScreenTimeRepository { return s.screen }
func (s *mockStore) FoodIntake() repository.FoodIntakeRepository { return s.food }
func (s *mockStore) Migrate(ctx context.Context) error           { return nil }
func (s *mockStore) Ping(ctx context.Context) error              { return nil }
func (s *mockStore) Close() error                                { return nil }

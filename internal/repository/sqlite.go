package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dailywell/backend/internal/models"
)

// sqliteTimeLayout is fixed-width so stored UTC timestamps sort
// lexicographically in range queries
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS moods (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	mood INTEGER NOT NULL CHECK (mood BETWEEN 1 AND 5),
	note TEXT,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_moods_created_at ON moods(created_at);

CREATE TABLE IF NOT EXISTS sleep_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	sleep_time TEXT NOT NULL,
	wake_time TEXT NOT NULL,
	total_sleep INTEGER NOT NULL,
	quality INTEGER NOT NULL CHECK (quality BETWEEN 1 AND 5),
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sleep_records_date ON sleep_records(date);

CREATE TABLE IF NOT EXISTS screen_time_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	minutes INTEGER NOT NULL CHECK (minutes >= 0),
	category TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_screen_time_records_date ON screen_time_records(date);

CREATE TABLE IF NOT EXISTS food_intake (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL UNIQUE,
	breakfast INTEGER NOT NULL DEFAULT 0,
	lunch INTEGER NOT NULL DEFAULT 0,
	snacks INTEGER NOT NULL DEFAULT 0,
	dinner INTEGER NOT NULL DEFAULT 0,
	water_intake INTEGER NOT NULL DEFAULT 0 CHECK (water_intake BETWEEN 0 AND 4),
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, s)
}

func parseDay(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database file at path
func NewSQLiteStore(path string) (Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// One writer at a time; sqlite serialises writes anyway.
	db.SetMaxOpenConns(1)

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Moods() MoodRepository            { return &sqliteMoodRepository{db: s.db} }
func (s *sqliteStore) Sleep() SleepRepository           { return &sqliteSleepRepository{db: s.db} }
func (s *sqliteStore) ScreenTime() ScreenTimeRepository { return &sqliteScreenTimeRepository{db: s.db} }
func (s *sqliteStore) FoodIntake() FoodIntakeRepository { return &sqliteFoodIntakeRepository{db: s.db} }
func (s *sqliteStore) Ping(ctx context.Context) error   { return s.db.PingContext(ctx) }
func (s *sqliteStore) Close() error                     { return s.db.Close() }

func (s *sqliteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

type sqliteMoodRepository struct {
	db *sql.DB
}

func (r *sqliteMoodRepository) Create(ctx context.Context, mood *models.Mood) (*models.Mood, error) {
	created := *mood
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO moods (mood, note, created_at) VALUES (?, ?, ?)",
		mood.Mood, mood.Note, formatTimestamp(created.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mood: %w", err)
	}
	if created.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to read mood id: %w", err)
	}

	created.CreatedAt = created.CreatedAt.UTC()
	return &created, nil
}

func (r *sqliteMoodRepository) List(ctx context.Context) ([]models.Mood, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+moodColumns+" FROM moods ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	return scanSQLiteMoods(rows)
}

func (r *sqliteMoodRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.Mood, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+moodColumns+" FROM moods WHERE created_at >= ? AND created_at <= ? ORDER BY created_at ASC, id ASC",
		formatTimestamp(start), formatTimestamp(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods by date range: %w", err)
	}
	return scanSQLiteMoods(rows)
}

func scanSQLiteMoods(rows *sql.Rows) ([]models.Mood, error) {
	defer rows.Close()

	var moods []models.Mood
	for rows.Next() {
		var (
			m         models.Mood
			note      sql.NullString
			createdAt string
		)
		if err := rows.Scan(&m.ID, &m.Mood, &note, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood: %w", err)
		}
		if note.Valid {
			m.Note = &note.String
		}
		t, err := parseTimestamp(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mood created_at: %w", err)
		}
		m.CreatedAt = t
		moods = append(moods, m)
	}
	return moods, rows.Err()
}

type sqliteSleepRepository struct {
	db *sql.DB
}

func (r *sqliteSleepRepository) Create(ctx context.Context, record *models.SleepRecord) (*models.SleepRecord, error) {
	created := *record
	created.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO sleep_records (date, sleep_time, wake_time, total_sleep, quality, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		calendarDay(record.Date), formatTimestamp(record.SleepTime), formatTimestamp(record.WakeTime),
		record.TotalSleep, record.Quality, formatTimestamp(created.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sleep record: %w", err)
	}
	if created.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to read sleep record id: %w", err)
	}
	return &created, nil
}

func (r *sqliteSleepRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.SleepRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+sleepColumns+" FROM sleep_records WHERE date >= ? AND date <= ? ORDER BY date ASC, id ASC",
		calendarDay(start), calendarDay(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sleep records: %w", err)
	}
	defer rows.Close()

	var records []models.SleepRecord
	for rows.Next() {
		var (
			s                                models.SleepRecord
			date, sleepAt, wakeAt, createdAt string
		)
		if err := rows.Scan(&s.ID, &date, &sleepAt, &wakeAt, &s.TotalSleep, &s.Quality, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan sleep record: %w", err)
		}
		if s.Date, err = parseDay(date); err != nil {
			return nil, fmt.Errorf("failed to parse sleep date: %w", err)
		}
		if s.SleepTime, err = parseTimestamp(sleepAt); err != nil {
			return nil, fmt.Errorf("failed to parse sleep_time: %w", err)
		}
		if s.WakeTime, err = parseTimestamp(wakeAt); err != nil {
			return nil, fmt.Errorf("failed to parse wake_time: %w", err)
		}
		if s.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse sleep created_at: %w", err)
		}
		records = append(records, s)
	}
	return records, rows.Err()
}

type sqliteScreenTimeRepository struct {
	db *sql.DB
}

func (r *sqliteScreenTimeRepository) Create(ctx context.Context, record *models.ScreenTimeRecord) (*models.ScreenTimeRecord, error) {
	created := *record
	created.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO screen_time_records (date, minutes, category, created_at) VALUES (?, ?, ?, ?)",
		formatTimestamp(record.Date), record.Minutes, record.Category, formatTimestamp(created.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create screen time record: %w", err)
	}
	if created.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to read screen time record id: %w", err)
	}
	return &created, nil
}

func (r *sqliteScreenTimeRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.ScreenTimeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+screenTimeColumns+" FROM screen_time_records WHERE date >= ? AND date <= ? ORDER BY date ASC, id ASC",
		formatTimestamp(start), formatTimestamp(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list screen time records: %w", err)
	}
	defer rows.Close()

	var records []models.ScreenTimeRecord
	for rows.Next() {
		var (
			s               models.ScreenTimeRecord
			date, createdAt string
		)
		if err := rows.Scan(&s.ID, &date, &s.Minutes, &s.Category, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan screen time record: %w", err)
		}
		if s.Date, err = parseTimestamp(date); err != nil {
			return nil, fmt.Errorf("failed to parse screen time date: %w", err)
		}
		if s.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse screen time created_at: %w", err)
		}
		records = append(records, s)
	}
	return records, rows.Err()
}

type sqliteFoodIntakeRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteFoodIntake(row rowScanner) (*models.FoodIntake, error) {
	var (
		f                          models.FoodIntake
		date, createdAt, updatedAt string
	)
	if err := row.Scan(&f.ID, &date, &f.Breakfast, &f.Lunch, &f.Snacks, &f.Dinner, &f.WaterIntake, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if f.Date, err = parseDay(date); err != nil {
		return nil, fmt.Errorf("failed to parse food intake date: %w", err)
	}
	if f.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse food intake created_at: %w", err)
	}
	if f.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse food intake updated_at: %w", err)
	}
	return &f, nil
}

func (r *sqliteFoodIntakeRepository) GetByDate(ctx context.Context, day time.Time) (*models.FoodIntake, error) {
	intake, err := scanSQLiteFoodIntake(r.db.QueryRowContext(ctx,
		"SELECT "+foodIntakeColumns+" FROM food_intake WHERE date = ?",
		calendarDay(day),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food intake: %w", err)
	}
	return intake, nil
}

func (r *sqliteFoodIntakeRepository) Upsert(ctx context.Context, day time.Time, update *models.UpdateFoodIntakeRequest) (*models.FoodIntake, error) {
	intake, err := r.GetByDate(ctx, day)
	if errors.Is(err, ErrNotFound) {
		intake = newFoodIntake(day)
	} else if err != nil {
		return nil, err
	}
	update.Apply(intake)

	now := formatTimestamp(time.Now())
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO food_intake (date, breakfast, lunch, snacks, dinner, water_intake, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			breakfast = excluded.breakfast,
			lunch = excluded.lunch,
			snacks = excluded.snacks,
			dinner = excluded.dinner,
			water_intake = excluded.water_intake,
			updated_at = excluded.updated_at
	`, calendarDay(day), intake.Breakfast, intake.Lunch, intake.Snacks, intake.Dinner, intake.WaterIntake, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert food intake: %w", err)
	}

	return r.GetByDate(ctx, day)
}

func (r *sqliteFoodIntakeRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]models.FoodIntake, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+foodIntakeColumns+" FROM food_intake WHERE date >= ? AND date <= ? ORDER BY date ASC",
		calendarDay(start), calendarDay(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list food intake: %w", err)
	}
	defer rows.Close()

	var intakes []models.FoodIntake
	for rows.Next() {
		f, err := scanSQLiteFoodIntake(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food intake: %w", err)
		}
		intakes = append(intakes, *f)
	}
	return intakes, rows.Err()
}

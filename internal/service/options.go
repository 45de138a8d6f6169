package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/dailywell/backend/internal/analytics"
)

var (
	// ErrInvalidInput is wrapped with a description of the rejected value
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownKind  = errors.New("unknown entry kind")
	ErrNotFound     = errors.New("not found")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Options carries the clock, timezone and rolling window shared by the
// services. Zero values fall back to time.Now, time.Local and 30 days.
type Options struct {
	Now        func() time.Time
	Location   *time.Location
	WindowDays int
}

// WithDefaults fills unset fields
func (o Options) WithDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.WindowDays <= 0 {
		o.WindowDays = analytics.DefaultWindowDays
	}
	return o
}

// Current is the reference instant in the configured timezone. Call
// it on an Options returned by WithDefaults.
func (o Options) Current() time.Time {
	return o.Now().In(o.Location)
}

// day moves a calendar date (as stored, usually UTC midnight) to
// midnight of the same date in the configured timezone
func (o Options) day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, o.Location)
}

func checkRange(start, end time.Time) error {
	if end.Before(start) {
		return invalidf("end %s is before start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return nil
}

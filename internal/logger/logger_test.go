package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewSlogLogger(Config{Level: level, Format: "json", Output: &buf}), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	return record
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"DEBUG":   LevelDebug,
		"warning": LevelWarn,
		" Error ": LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestSlogLogger_WritesFields(t *testing.T) {
	l, buf := newBufferLogger(LevelInfo)

	l.Info("mood recorded", String("kind", "mood"), Int("value", 4), Err(errors.New("boom")))

	record := decodeLine(t, buf)
	assert.Equal(t, "mood recorded", record["msg"])
	assert.Equal(t, "mood", record["kind"])
	assert.Equal(t, float64(4), record["value"])
	assert.Equal(t, "boom", record["error"])
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	l, buf := newBufferLogger(LevelWarn)

	l.Info("dropped")
	assert.Zero(t, buf.Len())

	l.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestCtx_AddsRequestID(t *testing.T) {
	l, buf := newBufferLogger(LevelDebug)
	ctx := WithLogger(WithRequestID(context.Background(), "req-42"), l)

	Ctx(ctx).Debug("hello")

	assert.Equal(t, "req-42", decodeLine(t, buf)["request_id"])
}

func TestWithRequestID_GeneratesWhenEmpty(t *testing.T) {
	ctx := WithRequestID(context.Background(), "")

	assert.Len(t, RequestIDFromContext(ctx), 36)
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

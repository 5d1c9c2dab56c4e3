package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelDebug, Format: "json", Component: ComponentScreens, Output: &buf})

	logger.Info("entry created", FieldAmount, "5000")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "entry created", rec["msg"])
	assert.Equal(t, ComponentScreens, rec[FieldComponent])
	assert.Equal(t, "5000", rec[FieldAmount])
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "json", Output: &buf}).WithComponent(ComponentMascot)
	assert.Equal(t, ComponentMascot, logger.Component())

	logger.Warn("twitch")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, ComponentMascot, rec[FieldComponent])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})
	logger.Info("hidden")
	assert.Zero(t, buf.Len())
	logger.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	logger := Discard().WithComponent(ComponentAnim)
	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Equal(t, "unknown", FromContext(context.Background()).Component())
}

func TestFromContextOr(t *testing.T) {
	fallback := Discard()
	assert.Same(t, fallback, FromContextOr(context.Background(), fallback))

	logger := Discard().WithComponent(ComponentAnim)
	assert.Same(t, logger, FromContextOr(NewContext(context.Background(), logger), fallback))
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithOperation(OpCreate).
		WithEntry("abc", "salary", decimal.NewFromInt(4200)).
		WithError(errors.New("boom")).
		WithError(nil)

	assert.Equal(t, OpCreate, f[FieldOperation])
	assert.Equal(t, "4200", f[FieldAmount])
	assert.NotContains(t, f, FieldScreen)
	assert.Equal(t, "boom", f[FieldError])
	assert.Len(t, f.ToSlice(), len(f)*2)
}

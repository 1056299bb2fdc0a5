package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 15, 17, 42, 13, 500, time.UTC)
	got := BeginningOfDay(ts)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC)
	got := EndOfDay(ts)

	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 59, got.Minute())
	assert.Equal(t, 59, got.Second())
	assert.Equal(t, 15, got.Day())
	assert.True(t, got.After(ts))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 3, 4, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
}

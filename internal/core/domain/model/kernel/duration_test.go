package kernel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomove/internal/core/domain/model/kernel"
)

func mustDuration(t *testing.T, minutes int64) kernel.Duration {
	t.Helper()
	duration, err := kernel.NewDuration(minutes)
	require.NoError(t, err)
	return duration
}

func TestNewDuration(t *testing.T) {
	tests := []struct {
		name    string
		minutes int64
		wantErr bool
	}{
		{name: "positive minutes", minutes: 90, wantErr: false},
		{name: "zero minutes", minutes: 0, wantErr: false},
		{name: "negative minutes", minutes: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duration, err := kernel.NewDuration(tt.minutes)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.NoError(t, duration.Validate())
				assert.Equal(t, tt.minutes, duration.Minutes())
			}
		})
	}
}

func TestNewDurationFromHoursAndDays(t *testing.T) {
	twoHours, err := kernel.NewDurationFromHours(2)
	require.NoError(t, err)
	assert.Equal(t, int64(120), twoHours.Minutes())

	oneDay, err := kernel.NewDurationFromDays(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1440), oneDay.Minutes())
}

func TestDurationBetween(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		end         time.Time
		wantMinutes int64
	}{
		{name: "exact hour", end: start.Add(time.Hour), wantMinutes: 60},
		{name: "fraction is floored", end: start.Add(65*time.Minute + 59*time.Second), wantMinutes: 65},
		{name: "zero span", end: start, wantMinutes: 0},
		{name: "inverted range clamps to zero", end: start.Add(-30 * time.Minute), wantMinutes: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			duration := kernel.DurationBetween(start, tt.end)
			assert.NoError(t, duration.Validate())
			assert.Equal(t, tt.wantMinutes, duration.Minutes())
		})
	}
}

func TestDuration_AddSubtractRoundTrip(t *testing.T) {
	a := mustDuration(t, 90)
	b := mustDuration(t, 45)

	sum, err := a.Add(b)
	require.NoError(t, err)

	back, err := sum.Subtract(b)
	require.NoError(t, err)

	assert.True(t, back.IsEqual(a))
}

func TestDuration_Subtract_NegativeResult(t *testing.T) {
	a := mustDuration(t, 30)
	b := mustDuration(t, 45)

	_, err := a.Subtract(b)
	require.Error(t, err)
}

func TestDuration_Multiply(t *testing.T) {
	base := mustDuration(t, 15)

	tripled, err := base.Multiply(3)
	require.NoError(t, err)
	assert.Equal(t, int64(45), tripled.Minutes())

	_, err = base.Multiply(-1)
	require.Error(t, err)
}

func TestDuration_Conversions(t *testing.T) {
	duration := mustDuration(t, 90)

	assert.InDelta(t, 1.5, duration.Hours(), 1e-9)
	assert.InDelta(t, 0.0625, duration.Days(), 1e-9)
}

func TestDuration_Comparisons(t *testing.T) {
	short := mustDuration(t, 10)
	long := mustDuration(t, 20)

	assert.True(t, long.IsGreaterThan(short))
	assert.True(t, short.IsLessThan(long))
	assert.False(t, short.IsEqual(long))
}

func TestDuration_Validate_ZeroValue(t *testing.T) {
	var duration kernel.Duration
	err := duration.Validate()
	require.Error(t, err)
	assert.Equal(t, kernel.ErrDurationIsNotConstructed, err)
}

func TestDuration_String(t *testing.T) {
	assert.Equal(t, "1h 5m", mustDuration(t, 65).String())
	assert.Equal(t, "45m", mustDuration(t, 45).String())
	assert.Equal(t, "0m", mustDuration(t, 0).String())
}

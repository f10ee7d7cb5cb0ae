package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-exercisetracker/models"
)

func TestCoerceDuration(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
		want    models.Duration
	}{
		{"integer string", "30", true, models.Minutes(30)},
		{"surrounding spaces", " 42 ", true, models.Minutes(42)},
		{"fraction truncates", "30.9", true, models.Minutes(30)},
		{"negative fraction truncates toward zero", "-5.5", true, models.Minutes(-5)},
		{"exponent", "1e2", true, models.Minutes(100)},
		{"hex", "0x1E", true, models.Minutes(30)},
		{"empty counts as zero", "", true, models.Minutes(0)},
		{"words are NaN", "thirty", true, models.NaNDuration()},
		{"trailing garbage is NaN", "30min", true, models.NaNDuration()},
		{"infinity is NaN", "Infinity", true, models.NaNDuration()},
		{"underscores are NaN", "1_000", true, models.NaNDuration()},
		{"missing is NaN", "", false, models.NaNDuration()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceDuration(tt.raw, tt.present))
		})
	}
}

func TestParseDateLayouts(t *testing.T) {
	jan15 := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2023-01-15", jan15},
		{"2023-01-15T00:00:00Z", jan15},
		{"2023-01-15T02:00:00+02:00", jan15},
		{"2023-01-15T09:30:00", jan15.Add(9*time.Hour + 30*time.Minute)},
		{"Sun Jan 15 2023", jan15},
		{"January 15, 2023", jan15},
		{"01/15/2023", jan15},
		{"2023/01/15", jan15},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseDate(tt.raw)
			require.True(t, got.Valid)
			assert.True(t, got.Time.Equal(tt.want), "got %s", got.Time)
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "yesterday", "2023-13-45", "15/01/2023"} {
		assert.False(t, ParseDate(raw).Valid, raw)
	}
}

func TestResolveDateDefaultsToNow(t *testing.T) {
	now := time.Date(2024, time.February, 29, 18, 45, 0, 0, time.UTC)

	got := ResolveDate("", now)
	require.True(t, got.Valid)
	assert.Equal(t, "Thu Feb 29 2024", got.DateString())

	assert.Equal(t, "Sun Jan 15 2023", ResolveDate("2023-01-15", now).DateString())
	assert.False(t, ResolveDate("not a date", now).Valid)
}

func TestParseBound(t *testing.T) {
	assert.Nil(t, ParseBound(""))

	b := ParseBound("2023-01-01")
	require.NotNil(t, b)
	assert.True(t, b.Valid)

	b = ParseBound("garbage")
	require.NotNil(t, b)
	assert.False(t, b.Valid)
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, int64(0), ParseLimit(""))
	assert.Equal(t, int64(3), ParseLimit("3"))
	assert.Equal(t, int64(2), ParseLimit("2.7"))
	assert.Equal(t, int64(0), ParseLimit("0"))
	assert.Equal(t, int64(4), ParseLimit("-4"))
	assert.Equal(t, int64(2), ParseLimit("-2.5"))
	assert.Equal(t, int64(0), ParseLimit("-0.5"))
	assert.Equal(t, int64(0), ParseLimit("lots"))
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	want := time.Date(2024, 1, 10, 13, 0, 0, 0, time.UTC)

	for _, s := range []string{
		"2024-01-10 13:00:00",
		"2024-01-10T13:00:00",
		"2024-01-10 13:00",
		"2024-01-10T13:00",
		"2024-01-10T13:00:00+09:00",
	} {
		got, err := ParseDateTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := ParseDateTime("10/01/2024 13:00")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.January, d.Month())

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
}

func TestRanges(t *testing.T) {
	from, to := DayRange(at("2024-01-10 13:45:00"))
	assert.Equal(t, at("2024-01-10 00:00:00"), from)
	assert.Equal(t, at("2024-01-11 00:00:00"), to)

	from, to = WeekRange(at("2024-01-07 10:00:00"))
	assert.Equal(t, at("2024-01-01 00:00:00"), from)
	assert.Equal(t, at("2024-01-08 00:00:00"), to)

	from, to = WeekRange(at("2024-01-08 10:00:00"))
	assert.Equal(t, at("2024-01-08 00:00:00"), from)

	from, to = MonthRange(2024, time.December)
	assert.Equal(t, at("2024-12-01 00:00:00"), from)
	assert.Equal(t, at("2025-01-01 00:00:00"), to)
}

func TestWallClockIsNaive(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	now := WallClock(seoul)()

	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now.Add(-9*time.Hour), time.Minute)
}

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(s string) time.Time {
	t, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestConflicts_MinimumSeparationIsSymmetric(t *testing.T) {
	existing := at("2024-01-10 12:00:00")
	lesson := 60 * time.Minute

	for offset := -120; offset <= 120; offset += 10 {
		candidate := existing.Add(time.Duration(offset) * time.Minute)
		want := offset > -60 && offset < 60

		assert.Equal(t, want, Conflicts(existing, candidate, lesson), "offset %d", offset)
		assert.Equal(t, want, Conflicts(candidate, existing, lesson), "offset %d reversed", offset)
	}
}

func TestConflicts_OddLessonLength(t *testing.T) {
	existing := at("2024-01-10 12:00:00")
	lesson := 50 * time.Minute

	assert.True(t, Conflicts(existing, existing.Add(49*time.Minute), lesson))
	assert.False(t, Conflicts(existing, existing.Add(50*time.Minute), lesson))
	assert.False(t, Conflicts(existing, existing.Add(-50*time.Minute), lesson))
}

func TestFirstConflict_HalfHourAndHourLater(t *testing.T) {
	active := []Schedule{
		{ID: 1, StartTime: at("2024-01-10 12:00:00"), Status: StatusScheduled},
	}

	got := FirstConflict(active, at("2024-01-10 12:30:00"), time.Hour, 0)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)

	assert.Nil(t, FirstConflict(active, at("2024-01-10 13:00:00"), time.Hour, 0))
}

func TestFirstConflict_SkipsExcludedAndInactive(t *testing.T) {
	active := []Schedule{
		{ID: 1, StartTime: at("2024-01-10 12:00:00"), Status: StatusScheduled},
		{ID: 2, StartTime: at("2024-01-10 12:15:00"), Status: StatusCancelled},
	}

	assert.Nil(t, FirstConflict(active, at("2024-01-10 12:30:00"), time.Hour, 1))
}

func TestConflictWindow(t *testing.T) {
	from, to := conflictWindow(at("2024-01-10 12:00:00"), time.Hour)

	assert.Equal(t, at("2024-01-10 11:00:00"), from)
	assert.Equal(t, at("2024-01-10 13:00:00"), to)
}

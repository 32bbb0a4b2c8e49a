package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestChangeAllowed(t *testing.T) {
	now := at("2024-01-10 09:00:00")
	day := 24 * time.Hour

	tests := []struct {
		name  string
		start time.Time
		days  int
		want  bool
	}{
		{"one minute more than the range", now.Add(3*day + time.Minute), 3, true},
		{"exactly the range", now.Add(3 * day), 3, true},
		{"one minute short", now.Add(3*day - time.Minute), 3, false},
		{"already started", now.Add(-time.Minute), 0, false},
		{"starting now with no notice", now, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChangeAllowed(now, tt.start, tt.days))
		})
	}
}

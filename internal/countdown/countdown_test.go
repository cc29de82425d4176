package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestComputeAtTarget(t *testing.T) {
	got := Compute(now, now)
	assert.Equal(t, Remaining{}, got)
	assert.True(t, got.IsZero())
}

func TestComputePastTargetNeverNegative(t *testing.T) {
	got := Compute(now.Add(-90*time.Minute), now)
	assert.Equal(t, Remaining{}, got)
}

func TestComputeDecomposition(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
		want   Remaining
	}{
		{
			name:   "one of each unit",
			offset: 90061000 * time.Millisecond, // 1d 1h 1m 1s
			want:   Remaining{Days: 1, Hours: 1, Minutes: 1, Seconds: 1},
		},
		{
			name:   "just under a day",
			offset: 24*time.Hour - time.Second,
			want:   Remaining{Days: 0, Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name:   "exactly one week",
			offset: 7 * 24 * time.Hour,
			want:   Remaining{Days: 7},
		},
		{
			name:   "sub-second remainder floors to zero seconds",
			offset: 900 * time.Millisecond,
			want:   Remaining{},
		},
		{
			name:   "ninety seconds",
			offset: 90 * time.Second,
			want:   Remaining{Minutes: 1, Seconds: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(now.Add(tt.offset), now))
		})
	}
}

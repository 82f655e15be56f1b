package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameClock(t *testing.T) {
	start := time.Unix(1000, 0)
	tests := []struct {
		name  string
		after time.Duration
		want  float64
	}{
		{"regular frame", 16 * time.Millisecond, 0.016},
		{"stalled frame is clamped", 250 * time.Millisecond, 0.1},
		{"clock anomaly", -5 * time.Millisecond, 0},
		{"no time passed", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFrameClock(0.1)
			assert.Zero(t, c.Tick(start))
			assert.InDelta(t, tt.want, c.Tick(start.Add(tt.after)), 1e-9)
		})
	}
}

func TestFrameClockDoesNotGoBackwards(t *testing.T) {
	start := time.Unix(1000, 0)
	c := NewFrameClock(0.1)
	c.Tick(start)

	c.Tick(start.Add(-time.Second))

	assert.Equal(t, start, c.Now())
	assert.InDelta(t, 0.05, c.Tick(start.Add(50*time.Millisecond)), 1e-9)
}

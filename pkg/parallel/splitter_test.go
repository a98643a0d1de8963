package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit_Properties(t *testing.T) {
	tests := []struct {
		name              string
		begin, end, step int
	}{
		{"contiguous small", 0, 10, 1},
		{"contiguous odd span", 0, 11, 1},
		{"strided", 2, 11, 3},
		{"large span", 0, 100003, 1},
		{"big step", 100, 1000, 7},
		{"two elements", 0, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := split(tt.begin, tt.end, tt.step)

			assert.Greater(t, m, tt.begin, "left half must be non-empty")
			assert.LessOrEqual(t, m, tt.end)
			assert.Zero(t, (m-tt.begin)%tt.step, "m must stay step-aligned")

			left := m - tt.begin
			right := tt.end - m
			assert.GreaterOrEqual(t, left, right, "left half must never be smaller than right")
		})
	}
}

func TestSplit_RightEmptyWhenSpanIsOneStep(t *testing.T) {
	// end - begin == step (a single index): the mandatory left half takes
	// that index, so m lands exactly at end and the right half is empty.
	m := split(0, 2, 2)
	assert.Equal(t, 2, m)
}

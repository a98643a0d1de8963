package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultChunk_Formula(t *testing.T) {
	tests := []struct {
		name                   string
		begin, end, step, p, qd int
		want                   int
	}{
		{"single-threaded collapses to one chunk", 0, 100, 1, 1, 0, 100},
		{"P>1 targets 8P outstanding leaves", 0, 1000, 1, 4, 0, 1000 / 32},
		{"queue depth discounts target", 0, 1000, 1, 4, 16, 1000 / 16},
		{"heavily queued still clamps ntasks to >=1", 0, 100, 1, 2, 10000, 100 / 1},
		{"strided range counts indices not raw span", 0, 100, 10, 1, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultChunk(tt.begin, tt.end, tt.step, tt.p, tt.qd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultChunk_ZeroIsTreatedAsOneBySplitCondition(t *testing.T) {
	// ni=1 with a huge ntasks target yields chunk=0 from integer division;
	// the task layer must clamp that to 1 rather than looping forever.
	chunk := defaultChunk(0, 1, 1, 100, 0)
	assert.Equal(t, 0, chunk)

	effective := chunk
	if effective < 1 {
		effective = 1
	}
	assert.Equal(t, 1, effective)
}

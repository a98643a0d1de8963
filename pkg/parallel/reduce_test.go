package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S2 - Sum reduction, exact for any chunk.
func TestReduce_Sum(t *testing.T) {
	a := make([]float64, 100)
	for i := range a {
		a[i] = float64(i + 1)
	}

	for _, chunk := range []int{1, 2, 3, 7, 25, 100} {
		t.Run("", func(t *testing.T) {
			body := NewReduceBody(
				func(i int) float64 { return a[i] },
				func(x, y float64) float64 { return x + y },
			)
			sum, err := ReduceChunk(0, 100, 1, chunk, body)
			require.NoError(t, err)
			assert.Equal(t, 5050.0, sum)
		})
	}
}

// S3 - Non-commutative combine (list concatenation) must preserve order
// for every chunk size.
func TestReduce_NonCommutativeCombine(t *testing.T) {
	for _, chunk := range []int{1, 2, 3, 5, 10} {
		t.Run("", func(t *testing.T) {
			body := NewReduceBody(
				func(i int) []int { return []int{i} },
				func(x, y []int) []int {
					out := make([]int, 0, len(x)+len(y))
					out = append(out, x...)
					out = append(out, y...)
					return out
				},
			)
			got, err := ReduceChunk(0, 10, 1, chunk, body)
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
		})
	}
}

// Invariant 3 - determinism of reduction: reduce must equal the sequential
// left-to-right fold for every chunk, with a non-commutative combiner.
func TestReduce_DeterministicAcrossChunks(t *testing.T) {
	const begin, end = 17, 311

	sequential := ""
	for i := begin; i < end; i++ {
		sequential += string(rune('a' + i%26))
	}

	body := NewReduceBody(
		func(i int) string { return string(rune('a' + i%26)) },
		func(x, y string) string { return x + y },
	)

	for chunk := 1; chunk <= end-begin; chunk *= 3 {
		got, err := ReduceChunk(begin, end, 1, chunk, body)
		require.NoError(t, err)
		assert.Equal(t, sequential, got)
	}
	// and the full span as a single leaf
	got, err := ReduceChunk(begin, end, 1, end-begin, body)
	require.NoError(t, err)
	assert.Equal(t, sequential, got)
}

// Nested reduction: a reduce body whose compute step itself calls reduce.
func TestReduce_Nested(t *testing.T) {
	const n, m = 6, 9

	body := NewReduceBody(
		func(i int) int {
			inner := NewReduceBody(
				func(j int) int { return i*m + j },
				func(x, y int) int { return x + y },
			)
			sum, err := Reduce(m, inner)
			require.NoError(t, err)
			return sum
		},
		func(x, y int) int { return x + y },
	)

	got, err := Reduce(n, body)
	require.NoError(t, err)

	want := 0
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			want += i*m + j
		}
	}
	assert.Equal(t, want, got)
}

// S6 - Argument errors, reduce variant.
func TestReduce_ArgumentValidation(t *testing.T) {
	body := NewReduceBody(
		func(i int) int { return i },
		func(x, y int) int { return x + y },
	)

	t.Run("begin equals end", func(t *testing.T) {
		_, err := ReduceFrom(5, 5, body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "begin")
	})

	t.Run("step zero", func(t *testing.T) {
		_, err := ReduceStep(0, 10, 0, body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step")
	})

	t.Run("chunk zero", func(t *testing.T) {
		_, err := ReduceChunk(0, 10, 1, 0, body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chunk")
	})
}

// Body failures from combine propagate too, not only from compute.
func TestReduce_CombineFailurePropagates(t *testing.T) {
	body := NewReduceBody(
		func(i int) int { return i },
		func(x, y int) int {
			if x+y > 100 {
				panic("overflowed")
			}
			return x + y
		},
	)

	_, err := Reduce(50, body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loop body failed")
}

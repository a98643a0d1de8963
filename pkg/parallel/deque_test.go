package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antineutrino2/jtk/pkg/collections"
)

type fakeJob struct {
	n int
	ran chan int
}

func (f *fakeJob) execute() { f.ran <- f.n }

func newFakeJob(n int) *fakeJob {
	return &fakeJob{n: n, ran: make(chan int, 1)}
}

func TestDeque_PushPopLIFO(t *testing.T) {
	bits := collections.NewAtomicBitset(4)
	d := newDeque(0, bits)

	d.push(newFakeJob(1))
	d.push(newFakeJob(2))
	d.push(newFakeJob(3))

	j, ok := d.pop()
	require.True(t, ok)
	assert.Equal(t, 3, j.(*fakeJob).n)

	j, ok = d.pop()
	require.True(t, ok)
	assert.Equal(t, 2, j.(*fakeJob).n)
}

func TestDeque_StealFIFO(t *testing.T) {
	bits := collections.NewAtomicBitset(4)
	d := newDeque(0, bits)

	d.push(newFakeJob(1))
	d.push(newFakeJob(2))
	d.push(newFakeJob(3))

	j, ok := d.steal()
	require.True(t, ok)
	assert.Equal(t, 1, j.(*fakeJob).n)
}

func TestDeque_EmptyPopAndSteal(t *testing.T) {
	bits := collections.NewAtomicBitset(4)
	d := newDeque(1, bits)

	_, ok := d.pop()
	assert.False(t, ok)

	_, ok = d.steal()
	assert.False(t, ok)
}

func TestDeque_GrowsPastInitialCapacity(t *testing.T) {
	bits := collections.NewAtomicBitset(4)
	d := newDeque(2, bits)

	for i := 0; i < initialDequeCapacity+10; i++ {
		d.push(newFakeJob(i))
	}
	assert.Equal(t, initialDequeCapacity+10, d.size())

	seen := 0
	for {
		if _, ok := d.pop(); !ok {
			break
		}
		seen++
	}
	assert.Equal(t, initialDequeCapacity+10, seen)
}

func TestDeque_NonEmptyBitsetTracksState(t *testing.T) {
	bits := collections.NewAtomicBitset(4)
	d := newDeque(3, bits)

	assert.False(t, bits.Test(3))
	d.push(newFakeJob(1))
	assert.True(t, bits.Test(3))

	_, _ = d.pop()
	assert.False(t, bits.Test(3))
}

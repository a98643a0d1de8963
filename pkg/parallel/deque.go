package parallel

import (
	"sync"

	"github.com/antineutrino2/jtk/pkg/collections"
)

// job is the type-erased form of a task[V] that a deque can hold. Each
// task[V].execute satisfies it regardless of its accumulator type V, which
// is how a single worker's deque can carry both Action and Reduction<V>
// sub-tasks (and Reduction<V> sub-tasks of differing V, across nested
// invocations) without a type switch at schedule time.
type job interface {
	execute()
}

// bufferPool recycles the fixed-size backing arrays freshly-constructed
// deques start with, so repeatedly spinning up pools (as the test suite
// does via SetTestParallelism) doesn't hand the GC a fresh slab per deque.
var bufferPool = collections.NewSlicePool[job](initialDequeCapacity)

const initialDequeCapacity = 64

// deque is a work-stealing double-ended queue: the owning worker pushes and
// pops from the bottom (LIFO, for cache locality on its own recursion
// spine), and thieves steal from the top (FIFO, so the oldest, typically
// largest, sub-tasks are the ones offered up for stealing). Grounded on the
// Chase-Lev deque in the example pack's work-stealing strategy, adapted
// from a generic Job wrapper type to the job interface above and augmented
// with a shared non-empty bitset so thieves can skip deques they already
// know are empty.
type deque struct {
	mu          sync.Mutex
	buf         []job
	bottom, top int
	owner       int
	nonEmpty    *collections.AtomicBitset
}

func newDeque(owner int, nonEmpty *collections.AtomicBitset) *deque {
	s := bufferPool.Get()
	buf := (*s)[:cap(*s)]
	if len(buf) < initialDequeCapacity {
		buf = make([]job, initialDequeCapacity)
	}
	return &deque{buf: buf, owner: owner, nonEmpty: nonEmpty}
}

// push adds j to the bottom of the deque. Only the owning worker calls this.
func (d *deque) push(j job) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.bottom-d.top >= len(d.buf) {
		d.grow()
	}
	d.buf[d.bottom%len(d.buf)] = j
	d.bottom++
	d.nonEmpty.Set(d.owner)
}

// pop removes and returns a job from the bottom of the deque. Only the
// owning worker calls this.
func (d *deque) pop() (job, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	bottom := d.bottom - 1
	top := d.top
	if top > bottom {
		d.bottom = top
		return nil, false
	}

	j := d.buf[bottom%len(d.buf)]
	d.buf[bottom%len(d.buf)] = nil
	d.bottom = bottom
	if top == bottom {
		d.nonEmpty.Clear(d.owner)
	}
	return j, true
}

// steal removes and returns a job from the top of the deque. Any worker
// other than the owner may call this.
func (d *deque) steal() (job, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	top := d.top
	bottom := d.bottom
	if top >= bottom {
		return nil, false
	}

	j := d.buf[top%len(d.buf)]
	d.buf[top%len(d.buf)] = nil
	d.top++
	if d.top >= d.bottom {
		d.nonEmpty.Clear(d.owner)
	}
	return j, true
}

// grow doubles the buffer in place. Caller holds d.mu.
func (d *deque) grow() {
	old := d.buf
	newBuf := make([]job, len(old)*2)
	for i := d.top; i < d.bottom; i++ {
		newBuf[i%len(newBuf)] = old[i%len(old)]
	}
	d.buf = newBuf
	if len(old) == initialDequeCapacity {
		for i := range old {
			old[i] = nil
		}
		bufferPool.Put(&old)
	}
}

func (d *deque) size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bottom - d.top
}

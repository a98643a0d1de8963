// Package parallel implements a divide-and-conquer parallel loop/reduce
// engine: Loop and Reduce recursively split an index range across a
// process-wide work-stealing worker pool, down to a chunk-sized leaf that
// runs sequentially. See loop.go and reduce.go for the public entry
// points.
package parallel

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/antineutrino2/jtk/pkg/collections"
	"github.com/antineutrino2/jtk/pkg/utils"
)

// worker is one pool thread: an identity (so currentWorker can recognize
// "am I a pool worker?"), a reference back to its pool, and its own
// work-stealing deque.
type worker struct {
	id   int
	pool *Pool
	dq   *deque
}

// Pool is a process-wide worker pool. It is never constructed directly by
// callers — use Parallelism/QueuedTasks to observe it and SetTestParallelism
// to override its size before first use.
type Pool struct {
	workers  []*worker
	registry map[uint64]*worker // built once at construction, read-only after

	parallelism int
	queued      atomic.Int64
	nonEmpty    *collections.AtomicBitset

	clock  utils.Clock
	logger utils.Logger
}

var (
	pool            *Pool
	poolOnce        sync.Once
	poolInitialized atomic.Bool
	testParallelism int
)

// SetTestParallelism overrides the worker count the pool lazily constructs
// with. It must be called before any Loop/Reduce/Parallelism/QueuedTasks
// call touches the pool; calling it afterward panics, since the pool's
// parallelism is fixed for its lifetime once workers are started.
func SetTestParallelism(n int) {
	if poolInitialized.Load() {
		panic("parallel: SetTestParallelism called after the worker pool was already initialized")
	}
	testParallelism = n
}

// defaultPool returns the process-wide pool, constructing it on first use.
func defaultPool() *Pool {
	poolOnce.Do(func() {
		poolInitialized.Store(true)
		p := testParallelism
		if p <= 0 {
			p = runtime.GOMAXPROCS(0)
		}
		pool = newPool(p)
	})
	return pool
}

func newPool(p int) *Pool {
	if p < 1 {
		p = 1
	}

	pl := &Pool{
		parallelism: p,
		nonEmpty:    collections.NewAtomicBitset(p),
		clock:       utils.NewRealClock(),
		logger:      utils.GetGlobalLogger(),
	}

	pl.workers = make([]*worker, p)
	registry := make(map[uint64]*worker, p)
	var mu sync.Mutex
	var started sync.WaitGroup
	started.Add(p)

	for i := 0; i < p; i++ {
		w := &worker{id: i, pool: pl, dq: newDeque(i, pl.nonEmpty)}
		pl.workers[i] = w
		go func(w *worker) {
			mu.Lock()
			registry[goroutineID()] = w
			mu.Unlock()
			started.Done()
			w.run()
		}(w)
	}

	started.Wait()
	// Every write above happened-before this point (WaitGroup.Wait
	// synchronizes with each Done); the registry is read-only from here,
	// so currentWorker needs no lock to read it.
	pl.registry = registry

	pl.logger.Debug("worker pool started parallelism=%d", p)
	return pl
}

// currentWorker reports whether the calling goroutine is one of the pool's
// own workers, and which one. This is the Nested Execution Guard's query:
// the entry points use it to decide between direct-invoke and
// submit-and-block.
func currentWorker() (*worker, bool) {
	p := defaultPool()
	w, ok := p.registry[goroutineID()]
	return w, ok
}

// Parallelism returns the pool's fixed worker count, initializing the pool
// if this is the first call.
func Parallelism() int {
	return defaultPool().parallelism
}

// QueuedTasks returns an approximate count of forked-but-not-yet-started
// tasks across all worker deques. It may race with concurrent pushes and
// pops; the Chunk Policy tolerates that staleness by design.
func QueuedTasks() int {
	return int(defaultPool().queued.Load())
}

// fork enqueues j onto owner's deque without blocking.
func (p *Pool) fork(owner *worker, j job) {
	owner.dq.push(j)
	p.queued.Add(1)
}

// join cooperatively waits for done to close, running other tasks off the
// owner's own deque or stolen from a sibling in the meantime. Only a pool
// worker calls join; a non-worker caller uses submitAndWait instead, which
// has no deque of its own to help from.
func (p *Pool) join(owner *worker, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		default:
		}

		if j, ok := owner.dq.pop(); ok {
			p.queued.Add(-1)
			j.execute()
			continue
		}
		if j, ok := owner.steal(); ok {
			p.queued.Add(-1)
			j.execute()
			continue
		}

		select {
		case <-done:
			return
		case <-p.clock.After(time.Millisecond):
		}
	}
}

// submitAndWait enqueues j on an arbitrary worker's deque and blocks the
// calling (non-worker) goroutine until done closes.
func (p *Pool) submitAndWait(j job, done <-chan struct{}) {
	idx := rand.Intn(len(p.workers))
	p.workers[idx].dq.push(j)
	p.queued.Add(1)
	<-done
}

// run is a worker's main loop: prefer its own deque (LIFO), then try to
// steal (FIFO) from a sibling, then back off briefly before retrying.
func (w *worker) run() {
	for {
		if j, ok := w.dq.pop(); ok {
			w.pool.queued.Add(-1)
			j.execute()
			continue
		}
		if j, ok := w.steal(); ok {
			w.pool.queued.Add(-1)
			j.execute()
			continue
		}
		w.pool.clock.Sleep(time.Millisecond)
	}
}

// steal tries every other worker once, starting from a random offset to
// avoid every idle worker hammering worker 0 first, skipping deques the
// shared bitset already reports empty.
func (w *worker) steal() (job, bool) {
	n := len(w.pool.workers)
	if n <= 1 {
		return nil, false
	}

	start := rand.Intn(n)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if idx == w.id || !w.pool.nonEmpty.Test(idx) {
			continue
		}
		if j, ok := w.pool.workers[idx].dq.steal(); ok {
			return j, true
		}
	}
	return nil, false
}

package parallel

import (
	"fmt"

	apperrors "github.com/antineutrino2/jtk/pkg/errors"
)

// task is a divide-and-conquer unit over [begin, end) with stride step. V
// is struct{} for an Action (combine is nil); any other type makes it a
// Reduction. A task is constructed once per split and never reused.
type task[V any] struct {
	begin, end, step, chunk int
	compute                 ComputeFunc[V]
	combine                 CombineFunc[V]

	result V
	err    error
	done   chan struct{}
}

func newTask[V any](begin, end, step, chunk int, compute ComputeFunc[V], combine CombineFunc[V]) *task[V] {
	return &task[V]{
		begin:   begin,
		end:     end,
		step:    step,
		chunk:   chunk,
		compute: compute,
		combine: combine,
		done:    make(chan struct{}),
	}
}

// execute is what a worker calls after popping or stealing this task off a
// deque: it runs the task and then signals completion. The root task of a
// nested (already-on-a-worker) invocation never goes through execute —
// its owning goroutine calls run directly and reads the result/err fields
// itself, since nobody else is waiting on its done channel.
func (t *task[V]) execute() {
	defer close(t.done)
	t.run()
}

// run performs the split-or-leaf decision and, on a branch, forks the
// right child onto the current worker's deque before recursing left on
// the calling goroutine. It must only be called from a pool worker's
// goroutine (the root task's direct-invoke path, or a previously forked
// child being executed).
func (t *task[V]) run() {
	defer t.recoverBodyFailure()

	effChunk := t.chunk
	if effChunk < 1 {
		effChunk = 1
	}

	if t.end-t.begin <= effChunk*t.step {
		t.runLeaf()
		return
	}

	w, ok := currentWorker()
	if !ok {
		// run is only ever called from within a worker's goroutine; a
		// caller reaching this without one is an engine bug, not a user
		// error, so fail loudly rather than deadlock silently.
		panic("parallel: task.run invoked off a pool worker goroutine")
	}

	m := split(t.begin, t.end, t.step)

	left := newTask(t.begin, m, t.step, t.chunk, t.compute, t.combine)
	var right *task[V]
	if m < t.end {
		right = newTask(m, t.end, t.step, t.chunk, t.compute, t.combine)
		w.pool.fork(w, right)
	}

	left.run()

	if right != nil {
		w.pool.join(w, right.done)
	}

	switch {
	case left.err != nil:
		t.err = left.err
	case right != nil && right.err != nil:
		t.err = right.err
	case t.combine != nil:
		if right != nil {
			t.result = t.combine(left.result, right.result)
		} else {
			t.result = left.result
		}
	}
}

// runLeaf executes the task's span sequentially on the current goroutine.
func (t *task[V]) runLeaf() {
	if t.combine == nil {
		for i := t.begin; i < t.end; i += t.step {
			t.compute(i)
		}
		return
	}

	v := t.compute(t.begin)
	for i := t.begin + t.step; i < t.end; i += t.step {
		v = t.combine(v, t.compute(i))
	}
	t.result = v
}

// recoverBodyFailure converts a panicking compute/combine call into a
// BODY_FAILURE error attached to this task, so it propagates through join
// like any other task error instead of unwinding the worker goroutine.
func (t *task[V]) recoverBodyFailure() {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		t.err = apperrors.Wrap(apperrors.CodeBodyFailure, "loop body failed", err)
		return
	}
	t.err = apperrors.Wrap(apperrors.CodeBodyFailure, "loop body failed", fmt.Errorf("%v", r))
}

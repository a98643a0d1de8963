package parallel

// Loop runs body.Compute once for every i in {0, 1, ..., end-1}, splitting
// the range across the worker pool. It blocks until every index has been
// visited (or a body invocation fails) and returns the first observed
// failure, if any.
func Loop(end int, body LoopBody) error {
	return LoopFrom(0, end, body)
}

// LoopFrom runs body.Compute once for every i in {begin, begin+1, ..., end-1}.
func LoopFrom(begin, end int, body LoopBody) error {
	return LoopStep(begin, end, 1, body)
}

// LoopStep runs body.Compute once for every i in {begin, begin+step, ...} < end.
func LoopStep(begin, end, step int, body LoopBody) error {
	if err := validateRange(begin, end, step); err != nil {
		return err
	}
	p := defaultPool()
	chunk := defaultChunk(begin, end, step, p.parallelism, int(p.queued.Load()))
	return runLoop(begin, end, step, chunk, body)
}

// LoopChunk is LoopStep with an explicit leaf-size threshold instead of one
// computed by the Chunk Policy.
func LoopChunk(begin, end, step, chunk int, body LoopBody) error {
	if err := validateRange(begin, end, step); err != nil {
		return err
	}
	if err := validateChunk(chunk); err != nil {
		return err
	}
	return runLoop(begin, end, step, chunk, body)
}

func runLoop(begin, end, step, chunk int, body LoopBody) error {
	compute := func(i int) struct{} {
		body.Compute(i)
		return struct{}{}
	}
	root := newTask[struct{}](begin, end, step, chunk, compute, nil)
	dispatch[struct{}](root)
	return root.err
}

// dispatch is the Nested Execution Guard: a call already running on a pool
// worker drives the root task directly on the current goroutine (so it
// never blocks waiting on a pool that might be fully occupied by other
// nested callers); any other caller submits the root task and blocks.
func dispatch[V any](root *task[V]) {
	if _, ok := currentWorker(); ok {
		root.run()
		return
	}
	defaultPool().submitAndWait(root, root.done)
}

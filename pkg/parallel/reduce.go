package parallel

// Reduce folds body.Compute(i) for i in {0, ..., end-1} using body.Combine,
// applied in strict left-to-right index order regardless of how the work
// was scheduled. Combine must be associative; it need not be commutative.
func Reduce[V any](end int, body ReduceBody[V]) (V, error) {
	return ReduceFrom[V](0, end, body)
}

// ReduceFrom folds body.Compute(i) for i in {begin, ..., end-1}.
func ReduceFrom[V any](begin, end int, body ReduceBody[V]) (V, error) {
	return ReduceStep[V](begin, end, 1, body)
}

// ReduceStep folds body.Compute(i) for i in {begin, begin+step, ...} < end.
func ReduceStep[V any](begin, end, step int, body ReduceBody[V]) (V, error) {
	var zero V
	if err := validateRange(begin, end, step); err != nil {
		return zero, err
	}
	p := defaultPool()
	chunk := defaultChunk(begin, end, step, p.parallelism, int(p.queued.Load()))
	return runReduce[V](begin, end, step, chunk, body)
}

// ReduceChunk is ReduceStep with an explicit leaf-size threshold instead of
// one computed by the Chunk Policy.
func ReduceChunk[V any](begin, end, step, chunk int, body ReduceBody[V]) (V, error) {
	var zero V
	if err := validateRange(begin, end, step); err != nil {
		return zero, err
	}
	if err := validateChunk(chunk); err != nil {
		return zero, err
	}
	return runReduce[V](begin, end, step, chunk, body)
}

func runReduce[V any](begin, end, step, chunk int, body ReduceBody[V]) (V, error) {
	root := newTask[V](begin, end, step, chunk, body.Compute, body.Combine)
	dispatch[V](root)
	return root.result, root.err
}

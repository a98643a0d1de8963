package parallel

// LoopBody is the capability an Action invocation needs: side-effecting
// per-index work with no return value. Implementations must be safe to
// call concurrently for disjoint indices — the engine assumes no ordering
// between indices and performs no synchronization of its own.
type LoopBody interface {
	Compute(i int)
}

// LoopFunc adapts a plain closure to LoopBody, mirroring the teacher's
// Task/TaskFunc split: implement the interface directly for a body that
// carries state worth naming, or wrap a closure for the common case.
type LoopFunc func(i int)

// Compute implements LoopBody.
func (f LoopFunc) Compute(i int) { f(i) }

// ReduceBody is the capability a Reduction[V] invocation needs:
// per-index value production plus a pairwise, associative combiner.
// Combine must be associative; it need not be commutative, and the engine
// guarantees it is never called with its two arguments reversed relative
// to index order.
type ReduceBody[V any] interface {
	Compute(i int) V
	Combine(a, b V) V
}

// ComputeFunc produces the per-index value for a Reduction.
type ComputeFunc[V any] func(i int) V

// CombineFunc folds two per-index (or per-subtree) values together. The
// first argument always corresponds to the lower index range.
type CombineFunc[V any] func(a, b V) V

// funcReduceBody adapts a ComputeFunc/CombineFunc pair to ReduceBody,
// for callers who'd rather pass two closures than define a type.
type funcReduceBody[V any] struct {
	compute ComputeFunc[V]
	combine CombineFunc[V]
}

func (b funcReduceBody[V]) Compute(i int) V   { return b.compute(i) }
func (b funcReduceBody[V]) Combine(a, c V) V { return b.combine(a, c) }

// NewReduceBody builds a ReduceBody from a compute/combine closure pair.
func NewReduceBody[V any](compute ComputeFunc[V], combine CombineFunc[V]) ReduceBody[V] {
	return funcReduceBody[V]{compute: compute, combine: combine}
}

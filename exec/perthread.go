package exec

// PerThread is a fixed-size array of private per-worker slots requiring no
// synchronization between slots.3: "Lifetime equals the
// storage object's lifetime. No synchronization inside a slot." DoAll and
// ForEach pass each worker its own integer worker id; Local(id) indexes
// directly into the backing slice.
type PerThread[T any] struct {
	slots []T
}

// NewPerThread allocates width slots, each zero-valued.
func NewPerThread[T any](width int) *PerThread[T] {
	return &PerThread[T]{slots: make([]T, width)}
}

// Local returns a pointer to worker id's private slot.
func (p *PerThread[T]) Local(id int) *T { return &p.slots[id] }

// Width() reports the number of slots.
func (p *PerThread[T]) Width() int { return len(p.slots) }

// Slots() exposes the backing slice for a final single-threaded reduction
// pass (e.g. analytics/lcc's per-thread slab reduction).
func (p *PerThread[T]) Slots() []T { return p.slots }

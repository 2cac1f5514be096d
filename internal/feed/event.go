package feed

// Event advances the snapshot. The variant set is closed: only the types in
// this file reduce, and each submitted event is consumed exactly once, in
// arrival order.
type Event interface {
	isEvent()
}

// Regenerate asks the reducer to recompute every entry's code.
type Regenerate struct{}

func (Regenerate) isEvent() {}

// Delete asks the reducer to remove the entry identified by the carried
// value's source URI and to remove the URI from the source store.
type Delete struct {
	Entry Entry
}

func (Delete) isEvent() {}

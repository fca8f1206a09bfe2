package nodes

import "slices"

// Pool stores objects keyed by caller IDs with per-frame liveness.
//
// Each frame the pool is Reset, every object redeclared by the caller is
// revived through FindOrCreate, and Update compacts away the slots that
// were not. Slot indices are only stable between two calls to Update; the
// remap it returns must be applied to every index kept elsewhere.
type Pool[T any] struct {
	items   []T
	ids     []int
	live    []bool
	index   map[int]int
	newItem func(id int) T
}

// NewPool creates an empty pool. newItem builds the initial value of a slot
// created for id.
func NewPool[T any](newItem func(id int) T) *Pool[T] {
	return &Pool[T]{
		index:   make(map[int]int),
		newItem: newItem,
	}
}

// Len returns the number of slots, live or stale.
func (p *Pool[T]) Len() int { return len(p.items) }

// At returns the object in slot i. The pointer is invalidated by the next
// slot creation or Update.
func (p *Pool[T]) At(i int) *T { return &p.items[i] }

// ID returns the caller ID of slot i.
func (p *Pool[T]) ID(i int) int { return p.ids[i] }

// Live reports whether slot i was redeclared since the last Reset.
func (p *Pool[T]) Live(i int) bool { return p.live[i] }

// NumLive returns the number of live slots.
func (p *Pool[T]) NumLive() int {
	n := 0
	for _, l := range p.live {
		if l {
			n++
		}
	}
	return n
}

// Find returns the slot index for id.
func (p *Pool[T]) Find(id int) (int, bool) {
	i, ok := p.index[id]
	return i, ok
}

// FindOrCreate returns the slot for id, creating it when absent, and marks
// it live. created reports whether a new slot was appended.
func (p *Pool[T]) FindOrCreate(id int) (idx int, created bool) {
	if i, ok := p.index[id]; ok {
		p.live[i] = true
		return i, false
	}
	idx = len(p.items)
	p.items = append(p.items, p.newItem(id))
	p.ids = append(p.ids, id)
	p.live = append(p.live, true)
	p.index[id] = idx
	return idx, true
}

// Reset marks every slot stale. Object data is kept so that slots revived
// during the frame retain their state.
func (p *Pool[T]) Reset() {
	for i := range p.live {
		p.live[i] = false
	}
}

// Update removes every stale slot and rebuilds the ID map. The returned
// slice maps old indices to new ones, with -1 for removed slots.
func (p *Pool[T]) Update() []int {
	remap := make([]int, len(p.items))
	n := 0
	for i := range p.items {
		if !p.live[i] {
			remap[i] = -1
			delete(p.index, p.ids[i])
			continue
		}
		remap[i] = n
		p.items[n] = p.items[i]
		p.ids[n] = p.ids[i]
		p.live[n] = true
		p.index[p.ids[n]] = n
		n++
	}
	clear(p.items[n:])
	p.items = p.items[:n]
	p.ids = p.ids[:n]
	p.live = p.live[:n]
	return remap
}

// Clear removes every slot.
func (p *Pool[T]) Clear() {
	p.items = p.items[:0]
	p.ids = p.ids[:0]
	p.live = p.live[:0]
	clear(p.index)
}

// mustFind returns the slot for id or panics with ErrUnknownID.
func (p *Pool[T]) mustFind(id int) int {
	i, ok := p.index[id]
	if !ok {
		fail(ErrUnknownID, "id %d", id)
	}
	return i
}

// IsSelected reports whether the slot for id is in sel.
func (p *Pool[T]) IsSelected(sel []int, id int) bool {
	return slices.Contains(sel, p.mustFind(id))
}

// Select appends the slot for id to sel. Selecting twice panics.
func (p *Pool[T]) Select(sel []int, id int) []int {
	i := p.mustFind(id)
	if slices.Contains(sel, i) {
		fail(ErrSelection, "id %d already selected", id)
	}
	return append(sel, i)
}

// Deselect removes the slot for id from sel, keeping the order of the
// remaining entries. Deselecting an unselected ID panics.
func (p *Pool[T]) Deselect(sel []int, id int) []int {
	i := p.mustFind(id)
	k := slices.Index(sel, i)
	if k < 0 {
		fail(ErrSelection, "id %d not selected", id)
	}
	return slices.Delete(sel, k, k+1)
}

// remapIndices rewrites indices through remap in place, dropping removed
// entries.
func remapIndices(indices []int, remap []int) []int {
	out := indices[:0]
	for _, i := range indices {
		if n := remap[i]; n >= 0 {
			out = append(out, n)
		}
	}
	return out
}

// remapIndex rewrites a single optional index, -1 meaning none.
func remapIndex(i int, remap []int) int {
	if i < 0 || i >= len(remap) {
		return -1
	}
	return remap[i]
}

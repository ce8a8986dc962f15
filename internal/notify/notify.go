// Package notify keeps ordered listener lists for synchronous event delivery.
package notify

// List holds listeners in registration order. It is not safe for concurrent
// use.
type List[L any] struct {
	next    int
	entries []entry[L]
}

type entry[L any] struct {
	id       int
	listener L
}

// Add registers l and returns the function that removes it again. Calling the
// returned function more than once is harmless.
func (ls *List[L]) Add(l L) func() {
	ls.next++
	id := ls.next
	ls.entries = append(ls.entries, entry[L]{id: id, listener: l})
	return func() { ls.remove(id) }
}

func (ls *List[L]) remove(id int) {
	for i, e := range ls.entries {
		if e.id == id {
			ls.entries = append(ls.entries[:i:i], ls.entries[i+1:]...)
			return
		}
	}
}

// Each calls fn for every listener registered when Each starts, in
// registration order. Listeners added or removed by fn take effect on the next
// call. There is no reentrancy guard: fn may trigger another Each.
func (ls *List[L]) Each(fn func(L)) {
	snapshot := ls.entries
	for _, e := range snapshot {
		fn(e.listener)
	}
}

// Len returns the number of registered listeners.
func (ls *List[L]) Len() int { return len(ls.entries) }

// Clear removes every listener.
func (ls *List[L]) Clear() { ls.entries = nil }

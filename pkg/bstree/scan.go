package bstree

import "iter"

// Iterator is called for each entry during a scan. Returning
// false stops the scan.
type Iterator[K any, V any] func(e Entry[K, V]) bool

// All returns an iterator over the map's entries in ascending key
// order. Each call to the returned sequence starts a fresh walk. The
// map must not be mutated while a walk is in progress.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		x := m.root
		for x != nil || len(stack) > 0 {
			for x != nil {
				stack = append(stack, x)
				x = x.left
			}
			x = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x.key, x.value) {
				return
			}
			x = x.right
		}
	}
}

// Keys returns an iterator over the map's keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Scan calls fn for every entry in ascending key order.
func (m *Map[K, V]) Scan(fn Iterator[K, V]) {
	for k, v := range m.All() {
		if !fn(Entry[K, V]{Key: k, Value: v}) {
			return
		}
	}
}

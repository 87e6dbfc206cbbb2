package bstree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Entry represents a key value pair held by the map.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("entry.key=%v, entry.value=%v", e.Key, e.Value)
}

// node owns its two subtrees. A nil child is an empty subtree.
type node[K any, V any] struct {
	left  *node[K, V]
	right *node[K, V]
	key   K
	value V
}

// Map is an ordered map backed by an unbalanced binary search tree.
// It is not safe for concurrent use; callers that share a Map across
// goroutines must hold one exclusive lock for the duration of every
// call. The zero value has no comparison function; use New or NewFunc.
type Map[K any, V any] struct {
	root    *node[K, V]
	count   int
	compare func(a, b K) int
	log     *logrus.Entry
}

// New returns an empty map ordered by the natural ordering of K.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty map ordered by compare, which must
// return a negative number when a < b, zero when a == b and a
// positive number when a > b, and must be a total order.
func NewFunc[K any, V any](compare func(a, b K) int, opts ...Option) *Map[K, V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Map[K, V]{
		compare: compare,
		log:     o.log,
	}
}

// find reports where a node with the key would be: at *pos.
// If *pos != nil the key is present, otherwise *pos is the empty
// slot a new node for the key should be attached to.
func (m *Map[K, V]) find(key K) **node[K, V] {
	pos := &m.root
	for x := *pos; x != nil; x = *pos {
		c := m.compare(key, x.key)
		if c == 0 {
			break
		}
		if c < 0 {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos
}

// Lookup returns a pointer to the value stored for key, or nil if
// the key is absent. The pointer is only valid until the next call
// that mutates the map.
func (m *Map[K, V]) Lookup(key K) *V {
	if x := *m.find(key); x != nil {
		return &x.value
	}
	return nil
}

// Get returns the value stored for key and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if x := *m.find(key); x != nil {
		return x.value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	return *m.find(key) != nil
}

// Insert stores value under key, overwriting any existing value.
func (m *Map[K, V]) Insert(key K, value V) {
	m.Put(key, value)
}

// Put stores value under key. It returns the previous value and
// true if the key already existed and was updated in place.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	pos := m.find(key)
	if x := *pos; x != nil {
		old := x.value
		x.value = value
		m.trace("overwrite", key)
		return old, true
	}
	// the node is fully built before the slot is touched
	*pos = &node[K, V]{key: key, value: value}
	m.count++
	m.trace("insert leaf", key)
	var zero V
	return zero, false
}

// Remove deletes key from the map. Removing an absent key is a no-op.
func (m *Map[K, V]) Remove(key K) {
	m.Del(key)
}

// Del deletes key from the map and returns the removed value and
// true, or the zero value and false if the key was absent.
func (m *Map[K, V]) Del(key K) (V, bool) {
	pos := m.find(key)
	z := *pos
	if z == nil {
		var zero V
		return zero, false
	}
	old := z.value
	m.unlink(pos)
	m.count--
	return old, true
}

// unlink removes the node owned by *pos, rebinding the slot.
func (m *Map[K, V]) unlink(pos **node[K, V]) {
	z := *pos
	switch {
	case z.left == nil && z.right == nil:
		*pos = nil
		m.trace("remove leaf", z.key)
	case z.left == nil:
		*pos = z.right
		m.trace("splice right child", z.key)
	case z.right == nil:
		*pos = z.left
		m.trace("splice left child", z.key)
	default:
		// z survives and takes over the in-order successor's entry;
		// the successor has no left child, so unlinking it always
		// ends in one of the cases above.
		spos := &z.right
		for (*spos).left != nil {
			spos = &(*spos).left
		}
		s := *spos
		m.trace("promote successor", z.key)
		z.key, z.value = s.key, s.value
		m.unlink(spos)
		return
	}
	z.left, z.right = nil, nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (Entry[K, V], bool) {
	x := m.root
	if x == nil {
		return Entry[K, V]{}, false
	}
	for x.left != nil {
		x = x.left
	}
	return Entry[K, V]{Key: x.key, Value: x.value}, true
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (Entry[K, V], bool) {
	x := m.root
	if x == nil {
		return Entry[K, V]{}, false
	}
	for x.right != nil {
		x = x.right
	}
	return Entry[K, V]{Key: x.key, Value: x.value}, true
}

func (m *Map[K, V]) String() string {
	var sb strings.Builder
	for k, v := range m.All() {
		sb.WriteString(Entry[K, V]{Key: k, Value: v}.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m *Map[K, V]) trace(event string, key K) {
	if m.log == nil || !m.log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	m.log.WithFields(logrus.Fields{
		"key":   key,
		"count": m.count,
	}).Trace(event)
}

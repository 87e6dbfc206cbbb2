package bstree

type copyFrame[K any, V any] struct {
	dst *node[K, V]
	src *node[K, V]
}

// duplicate returns a freshly allocated copy of the subtree rooted at src.
func duplicate[K any, V any](src *node[K, V]) *node[K, V] {
	if src == nil {
		return nil
	}
	root := &node[K, V]{key: src.key, value: src.value}
	stack := []copyFrame[K, V]{{dst: root, src: src}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l := f.src.left; l != nil {
			f.dst.left = &node[K, V]{key: l.key, value: l.value}
			stack = append(stack, copyFrame[K, V]{dst: f.dst.left, src: l})
		}
		if r := f.src.right; r != nil {
			f.dst.right = &node[K, V]{key: r.key, value: r.value}
			stack = append(stack, copyFrame[K, V]{dst: f.dst.right, src: r})
		}
	}
	return root
}

// release tears down the subtree rooted at x in post-order, so every
// node is let go only after both of its children, and returns the
// number of nodes released.
func release[K any, V any](x *node[K, V]) int {
	if x == nil {
		return 0
	}
	var n int
	stack := []*node[K, V]{x}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if l := top.left; l != nil {
			top.left = nil
			stack = append(stack, l)
			continue
		}
		if r := top.right; r != nil {
			top.right = nil
			stack = append(stack, r)
			continue
		}
		stack = stack[:len(stack)-1]
		var zk K
		var zv V
		top.key, top.value = zk, zv
		n++
	}
	return n
}

// Clone returns a deep copy of the map. The copy shares no nodes
// with m, so mutating either map is never observable in the other.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		root:    duplicate(m.root),
		count:   m.count,
		compare: m.compare,
		log:     m.log,
	}
}

// CopyFrom replaces the contents of m with a deep copy of src.
// Copying a map onto itself leaves it unchanged.
func (m *Map[K, V]) CopyFrom(src *Map[K, V]) {
	if m == src {
		return
	}
	// build the copy before letting go of the old tree
	root := duplicate(src.root)
	release(m.root)
	m.root, m.count, m.compare = root, src.count, src.compare
}

// Take transfers ownership of every node in m to a new map and
// leaves m empty and ready for reuse. No nodes are allocated.
func (m *Map[K, V]) Take() *Map[K, V] {
	dst := &Map[K, V]{
		root:    m.root,
		count:   m.count,
		compare: m.compare,
		log:     m.log,
	}
	m.root, m.count = nil, 0
	return dst
}

// MoveFrom releases the contents of m and takes ownership of the
// nodes of src, leaving src empty. Moving a map onto itself leaves
// it unchanged.
func (m *Map[K, V]) MoveFrom(src *Map[K, V]) {
	if m == src {
		return
	}
	release(m.root)
	m.root, m.count, m.compare = src.root, src.count, src.compare
	src.root, src.count = nil, 0
}

// Close releases every node held by the map. The map is empty
// afterwards and may be reused.
func (m *Map[K, V]) Close() {
	n := release(m.root)
	m.root, m.count = nil, 0
	if m.log != nil {
		m.log.WithField("released", n).Debug("closed map")
	}
}

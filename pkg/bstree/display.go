package bstree

import (
	"bufio"
	"fmt"
	"io"
)

// WriteEntries writes one "key value" line per entry to w in
// ascending key order.
func (m *Map[K, V]) WriteEntries(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for k, v := range m.All() {
		if _, err := fmt.Fprintf(bw, "%v %v\n", k, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type drawFrame[K any, V any] struct {
	x      *node[K, V]
	prefix string
	isLeft bool
}

// WriteTree draws the tree sideways, one key per line, each node
// followed by its left subtree and then its right subtree:
//
//	└──22
//	    ├──9
//	    │   └──19
//	    └──37
func (m *Map[K, V]) WriteTree(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var stack []drawFrame[K, V]
	if m.root != nil {
		stack = append(stack, drawFrame[K, V]{x: m.root})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		branch, indent := "└──", "    "
		if f.isLeft {
			branch, indent = "├──", "│   "
		}
		if _, err := fmt.Fprintf(bw, "%s%s%v\n", f.prefix, branch, f.x.key); err != nil {
			return err
		}
		prefix := f.prefix + indent
		// push right first so the left subtree is drawn first
		if f.x.right != nil {
			stack = append(stack, drawFrame[K, V]{x: f.x.right, prefix: prefix})
		}
		if f.x.left != nil {
			stack = append(stack, drawFrame[K, V]{
				x:      f.x.left,
				prefix: prefix,
				isLeft: f.x.right != nil,
			})
		}
	}
	return bw.Flush()
}

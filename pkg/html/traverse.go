package html

// Walk visits every element node under node (node included) in
// pre-order. fn returns true to stop the walk early. Text nodes are
// skipped but their position does not affect element order.
func Walk(node *Node, fn func(*Node) bool) bool {
	if node.Type == ElementNode {
		if fn(node) {
			return true
		}
	}
	for _, child := range node.Children {
		if Walk(child, fn) {
			return true
		}
	}
	return false
}

// TreeIterator produces a lazy pre-order sequence of the nodes under a
// root, root included. The sequence is finite for any acyclic tree and
// can be restarted with Reset. The tree must not be mutated while an
// iteration is in progress.
type TreeIterator struct {
	root  *Node
	stack []*Node
}

func NewTreeIterator(root *Node) *TreeIterator {
	it := &TreeIterator{root: root}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the root.
func (it *TreeIterator) Reset() {
	it.stack = it.stack[:0]
	it.stack = append(it.stack, it.root)
}

// Next returns the next node in pre-order, or nil when the sequence is
// exhausted.
func (it *TreeIterator) Next() *Node {
	if len(it.stack) == 0 {
		return nil
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	for i := len(n.Children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, n.Children[i])
	}
	return n
}

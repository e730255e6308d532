package core

// Op is one step of a traversal policy.
type Op func(Node)

// TraversePostOrder calls recurse on each child of n in attachment order and
// then calls leaf on n itself. Policies pass their own traversal method as
// recurse so the walk continues below the first level:
//
//	func (c *Counter) Traverse(n Node) { TraversePostOrder(n, c.Traverse, c.visit) }
func TraversePostOrder(n Node, recurse, leaf Op) {
	for _, child := range n.node().children {
		recurse(child)
	}
	leaf(n)
}

// Counter counts the nodes of a tree.
type Counter struct {
	count int
}

// Traverse adds every node reachable from n, n included, to the count.
func (c *Counter) Traverse(n Node) {
	TraversePostOrder(n, c.Traverse, c.visit)
}

func (c *Counter) visit(Node) {
	c.count++
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	c.count = 0
}

// Count returns the number of nodes visited since the last Reset.
func (c *Counter) Count() int {
	return c.count
}

// Flatten returns every node reachable from n in post-order.
// A subtree attached twice appears twice.
func Flatten(n Node) []Node {
	var nodes []Node
	var walk Op
	walk = func(n Node) {
		TraversePostOrder(n, walk, func(n Node) {
			nodes = append(nodes, n)
		})
	}
	walk(n)
	return nodes
}

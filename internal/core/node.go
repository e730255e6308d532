package core

import "slices"

// Node is an element of a tree that owns an ordered list of children.
// Children are shared: the same node may be attached under several parents,
// and each attachment holds one claim on it (see Release).
type Node interface {
	AddChild(child Node)
	AddChildren(children ...Node)
	Children() []Node
	Len() int
	Clone() Node

	node() *TreeNode
}

// TreeNode is the generic node. Concrete entries embed it and override Clone.
type TreeNode struct {
	children []Node
	claims   int
	released bool
}

// NewTreeNode creates an empty node with no children.
func NewTreeNode() *TreeNode {
	return &TreeNode{}
}

// AddChild appends child and takes a claim on it. Duplicates and subtrees
// that are already attached elsewhere are accepted as is.
func (n *TreeNode) AddChild(child Node) {
	child.node().claims++
	n.children = append(n.children, child)
}

// AddChildren appends every child in order.
func (n *TreeNode) AddChildren(children ...Node) {
	for _, child := range children {
		n.AddChild(child)
	}
}

// Children returns a copy of the child list. Changing the returned slice
// does not change the node.
func (n *TreeNode) Children() []Node {
	return slices.Clone(n.children)
}

// Len returns the number of direct children.
func (n *TreeNode) Len() int {
	return len(n.children)
}

// Clone returns a deep copy of n.
func (n *TreeNode) Clone() Node {
	return n.Copy()
}

// Copy deep-copies n: every child is replaced by its own Clone, so the result
// shares nothing with the source.
func (n *TreeNode) Copy() *TreeNode {
	c := &TreeNode{}
	c.copyChildren(n)
	return c
}

// Assign replaces the children of n with a deep copy of src's children.
// The previous children are released through tr once the copy is installed.
func (n *TreeNode) Assign(src *TreeNode, tr Tracer) {
	tmp := src.Copy()
	n.swap(tmp)
	Release(tmp, tr)
}

func (n *TreeNode) copyChildren(src *TreeNode) {
	for _, child := range src.children {
		n.AddChild(child.Clone())
	}
}

func (n *TreeNode) swap(other *TreeNode) {
	n.children, other.children = other.children, n.children
}

func (n *TreeNode) node() *TreeNode {
	return n
}

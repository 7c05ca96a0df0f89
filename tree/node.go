package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of mutable nodes. Each node carries a payload of type parameter T.
Nodes maintain a slice of children.

Trees are built and read by a single owner (the builder of a visual tree or
the cloner of a subtree), therefore the children slice is not protected by a
mutex.
*/

// Node is the base type our trees are built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // children nodes, never containing nil
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// A child which is already attached to another parent is detached from it first.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	node.children = append(node.children, ch)
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// RemoveChildren detaches all children of a node.
func (node *Node[T]) RemoveChildren() *Node[T] {
	for _, ch := range node.children {
		ch.parent = nil
	}
	node.children = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Children returns a copy of the children slice of a node.
func (node *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Walk visits node and all of its descendants in pre-order. If f returns
// false for a node, the descendants of that node are skipped.
func (node *Node[T]) Walk(f func(*Node[T]) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, ch := range node.children {
		ch.Walk(f)
	}
}

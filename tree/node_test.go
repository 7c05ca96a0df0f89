package tree

import (
	"testing"
)

func TestAddChild(t *testing.T) {
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b)
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.ChildCount())
	}
	if a.Parent() != root {
		t.Errorf("expected parent of a to be root, is %v", a.Parent())
	}
	if root.IndexOfChild(b) != 1 {
		t.Errorf("expected b at index 1, is at %d", root.IndexOfChild(b))
	}
}

func TestReparent(t *testing.T) {
	r1, r2 := NewNode("r1"), NewNode("r2")
	ch := NewNode("ch")
	r1.AddChild(ch)
	r2.AddChild(ch)
	if r1.ChildCount() != 0 {
		t.Errorf("expected r1 to have lost its child, has %d", r1.ChildCount())
	}
	if ch.Parent() != r2 {
		t.Errorf("expected ch to be attached to r2")
	}
}

func TestWalkPreOrder(t *testing.T) {
	root := NewNode("r")
	a := NewNode("a")
	a.AddChild(NewNode("a1")).AddChild(NewNode("a2"))
	root.AddChild(a).AddChild(NewNode("b"))
	var s string
	root.Walk(func(n *Node[string]) bool {
		s += n.Payload + " "
		return n.Payload != "a"
	})
	if s != "r a b " {
		t.Errorf("expected walk to skip below a, have %q", s)
	}
}

func TestRemoveChildren(t *testing.T) {
	root := NewNode(1)
	ch := NewNode(2)
	root.AddChild(ch)
	root.RemoveChildren()
	if root.ChildCount() != 0 || ch.Parent() != nil {
		t.Errorf("expected children to be detached")
	}
}

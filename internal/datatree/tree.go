package datatree

import "github.com/oba-ldap/nacm/internal/nacm"

// Element is a single data-tree node: a named, optionally namespaced
// element with a body string, attributes, element children, and the two
// evaluation flags the read evaluator sets during traversal.
type Element struct {
	Name      string
	Namespace string
	Body      string
	Attrs     map[string]string

	parent   *Element
	children []*Element

	marked  bool
	deleted bool
}

// NewElement creates a detached element with the given name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// WithNamespace sets the element's namespace and returns it for chaining.
func (e *Element) WithNamespace(ns string) *Element {
	e.Namespace = ns
	return e
}

// NamespaceURI implements schema.Namespaced.
func (e *Element) NamespaceURI() string {
	return e.Namespace
}

// WithBody sets the element's body text and returns it for chaining.
func (e *Element) WithBody(body string) *Element {
	e.Body = body
	return e
}

// Append adds child as the last element child of e.
func (e *Element) Append(child *Element) *Element {
	child.parent = e
	e.children = append(e.children, child)
	return e
}

// Tree implements nacm.DataTree over *Element trees.
type Tree struct{}

// New creates a Tree collaborator.
func New() *Tree {
	return &Tree{}
}

func asElement(node nacm.Node) *Element {
	e, _ := node.(*Element)
	return e
}

// FindChildBody returns the text of the first element child named name.
func (t *Tree) FindChildBody(node nacm.Node, name string) (string, bool) {
	e := asElement(node)
	if e == nil {
		return "", false
	}
	for _, c := range e.children {
		if c.Name == name {
			return c.Body, true
		}
	}
	return "", false
}

// FindChildElement returns the first element child named name.
func (t *Tree) FindChildElement(node nacm.Node, name string) (nacm.Node, bool) {
	e := asElement(node)
	if e == nil {
		return nil, false
	}
	for _, c := range e.children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Children returns the element children of node in document order.
func (t *Tree) Children(node nacm.Node) []nacm.Node {
	e := asElement(node)
	if e == nil {
		return nil
	}
	out := make([]nacm.Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// IsAncestor reports whether candidateAncestor is an ancestor of n.
func (t *Tree) IsAncestor(n, candidateAncestor nacm.Node) bool {
	ne := asElement(n)
	ancestor := asElement(candidateAncestor)
	if ne == nil || ancestor == nil {
		return false
	}
	for p := ne.parent; p != nil; p = p.parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// Detach removes node from its parent. A no-op if node has no parent.
func (t *Tree) Detach(node nacm.Node) {
	e := asElement(node)
	if e == nil || e.parent == nil {
		return
	}
	siblings := e.parent.children
	for i, c := range siblings {
		if c == e {
			e.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	e.parent = nil
}

// SetFlag sets flag on node.
func (t *Tree) SetFlag(node nacm.Node, flag nacm.Flag) {
	e := asElement(node)
	if e == nil {
		return
	}
	switch flag {
	case nacm.FlagMark:
		e.marked = true
	case nacm.FlagDelete:
		e.deleted = true
	}
}

// ClearFlag clears flag on node.
func (t *Tree) ClearFlag(node nacm.Node, flag nacm.Flag) {
	e := asElement(node)
	if e == nil {
		return
	}
	switch flag {
	case nacm.FlagMark:
		e.marked = false
	case nacm.FlagDelete:
		e.deleted = false
	}
}

// HasFlag reports whether flag is set on node.
func (t *Tree) HasFlag(node nacm.Node, flag nacm.Flag) bool {
	e := asElement(node)
	if e == nil {
		return false
	}
	switch flag {
	case nacm.FlagMark:
		return e.marked
	case nacm.FlagDelete:
		return e.deleted
	default:
		return false
	}
}

// PruneUnmarked removes every subtree, rooted at a child of root or
// deeper, whose root is not marked and which contains no marked
// descendant. root itself is never removed by this call.
func (t *Tree) PruneUnmarked(root nacm.Node, flag nacm.Flag) {
	e := asElement(root)
	if e == nil {
		return
	}
	e.children = pruneChildren(e.children, flag)
}

func pruneChildren(children []*Element, flag nacm.Flag) []*Element {
	kept := children[:0]
	for _, c := range children {
		c.children = pruneChildren(c.children, flag)
		if subtreeAlive(c, flag) {
			kept = append(kept, c)
		}
	}
	return kept
}

func subtreeAlive(e *Element, flag nacm.Flag) bool {
	if flag == nacm.FlagMark && e.marked {
		return true
	}
	return len(e.children) > 0
}

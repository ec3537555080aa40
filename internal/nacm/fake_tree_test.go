package nacm

// fakeNode is a minimal in-memory tree node used to exercise the engine
// without pulling in internal/datatree, keeping this package's tests
// independent of its reference collaborators.
type fakeNode struct {
	name     string
	module   string
	parent   *fakeNode
	children []*fakeNode
}

func newFakeNode(name, module string) *fakeNode {
	return &fakeNode{name: name, module: module}
}

func (n *fakeNode) addChild(c *fakeNode) *fakeNode {
	c.parent = n
	n.children = append(n.children, c)
	return n
}

// fakeTree implements DataTree over *fakeNode trees. Path rules are
// resolved by exact node identity, set up by the test itself, so
// CanonicalisePath is a no-op and ResolveInstanceID looks up a
// pre-registered node set by canonical path string.
type fakeTree struct {
	flags     map[*fakeNode]map[Flag]bool
	pathNodes map[string][]Node
}

func newFakeTree() *fakeTree {
	return &fakeTree{
		flags:     make(map[*fakeNode]map[Flag]bool),
		pathNodes: make(map[string][]Node),
	}
}

func (t *fakeTree) registerPath(path string, nodes ...*fakeNode) {
	ns := make([]Node, len(nodes))
	for i, n := range nodes {
		ns[i] = n
	}
	t.pathNodes[path] = ns
}

func (t *fakeTree) FindChildBody(node Node, name string) (string, bool) { return "", false }

func (t *fakeTree) FindChildElement(node Node, name string) (Node, bool) {
	n := node.(*fakeNode)
	for _, c := range n.children {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

func (t *fakeTree) Children(node Node) []Node {
	n := node.(*fakeNode)
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (t *fakeTree) IsAncestor(n, candidateAncestor Node) bool {
	cur := n.(*fakeNode).parent
	anc := candidateAncestor.(*fakeNode)
	for cur != nil {
		if cur == anc {
			return true
		}
		cur = cur.parent
	}
	return false
}

func (t *fakeTree) Detach(node Node) {
	n := node.(*fakeNode)
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (t *fakeTree) flagsFor(node Node) map[Flag]bool {
	n := node.(*fakeNode)
	f, ok := t.flags[n]
	if !ok {
		f = make(map[Flag]bool)
		t.flags[n] = f
	}
	return f
}

func (t *fakeTree) SetFlag(node Node, flag Flag)   { t.flagsFor(node)[flag] = true }
func (t *fakeTree) ClearFlag(node Node, flag Flag) { t.flagsFor(node)[flag] = false }
func (t *fakeTree) HasFlag(node Node, flag Flag) bool {
	return t.flagsFor(node)[flag]
}

func (t *fakeTree) PruneUnmarked(root Node, flag Flag) {
	n := root.(*fakeNode)
	n.children = pruneFake(t, n.children, flag)
}

func pruneFake(t *fakeTree, children []*fakeNode, flag Flag) []*fakeNode {
	kept := children[:0]
	for _, c := range children {
		c.children = pruneFake(t, c.children, flag)
		if t.HasFlag(c, flag) || len(c.children) > 0 {
			kept = append(kept, c)
		}
	}
	return kept
}

func (t *fakeTree) CanonicalisePath(path string, localNSCtx map[string]string, schema SchemaRegistry) (string, error) {
	return path, nil
}

func (t *fakeTree) ResolveInstanceID(root Node, schema SchemaRegistry, canonicalPath string) ([]Node, error) {
	return t.pathNodes[canonicalPath], nil
}

// fakeSchema resolves a node's module from the module string set on it.
type fakeSchema struct{}

func (fakeSchema) ModuleOf(node Node) (Module, error) {
	return Module{Name: node.(*fakeNode).module}, nil
}

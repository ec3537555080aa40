package datatree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oba-ldap/nacm/internal/nacm"
)

func buildSample() (root, x, y, z *Element) {
	root = NewElement("r")
	x = NewElement("x")
	y = NewElement("y")
	z = NewElement("z")
	root.Append(x)
	root.Append(y)
	y.Append(z)
	return
}

func TestTree_ChildrenAndAncestry(t *testing.T) {
	root, x, y, z := buildSample()
	tree := New()

	kids := tree.Children(root)
	require.Len(t, kids, 2)
	assert.Equal(t, x, kids[0])
	assert.Equal(t, y, kids[1])

	assert.True(t, tree.IsAncestor(z, root))
	assert.True(t, tree.IsAncestor(z, y))
	assert.False(t, tree.IsAncestor(z, x))
	assert.False(t, tree.IsAncestor(root, root))
}

func TestTree_FindChild(t *testing.T) {
	root, x, _, _ := buildSample()
	tree := New()

	child, ok := tree.FindChildElement(root, "x")
	require.True(t, ok)
	assert.Equal(t, x, child)

	_, ok = tree.FindChildElement(root, "missing")
	assert.False(t, ok)
}

func TestTree_Detach(t *testing.T) {
	root, x, y, _ := buildSample()
	tree := New()

	tree.Detach(y)
	assert.Equal(t, []nacm.Node{x}, tree.Children(root))
	assert.Nil(t, y.parent)

	// Detaching an already-detached node is a no-op.
	tree.Detach(y)
	assert.Nil(t, y.parent)
}

func TestTree_Flags(t *testing.T) {
	root, _, _, _ := buildSample()
	tree := New()

	assert.False(t, tree.HasFlag(root, nacm.FlagMark))
	tree.SetFlag(root, nacm.FlagMark)
	assert.True(t, tree.HasFlag(root, nacm.FlagMark))
	tree.ClearFlag(root, nacm.FlagMark)
	assert.False(t, tree.HasFlag(root, nacm.FlagMark))
}

func TestTree_PruneUnmarked(t *testing.T) {
	root, x, _, _ := buildSample()
	tree := New()

	tree.SetFlag(x, nacm.FlagMark)
	tree.PruneUnmarked(root, nacm.FlagMark)

	assert.Equal(t, []nacm.Node{x}, tree.Children(root))
}

func TestTree_PruneUnmarked_KeepsAncestorOfMarkedDescendant(t *testing.T) {
	root, x, y, z := buildSample()
	tree := New()

	tree.SetFlag(z, nacm.FlagMark)
	tree.PruneUnmarked(root, nacm.FlagMark)

	assert.ElementsMatch(t, []nacm.Node{y}, tree.Children(root), "unmarked leaf x has no marked descendant and is pruned")
	assert.Equal(t, []nacm.Node{z}, tree.Children(y))
}

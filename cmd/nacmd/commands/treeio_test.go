package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oba-ldap/nacm/internal/datatree"
)

const sampleTreeXML = `<r xmlns="urn:example:r"><x xmlns="urn:example:x"/><y xmlns="urn:example:y"><z xmlns="urn:example:z">hello</z></y></r>`

func TestLoadTree(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTreeXML), 0o644))

	root, err := loadTree(path)
	require.NoError(t, err)
	assert.Equal(t, "r", root.Name)
	assert.Equal(t, "urn:example:r", root.Namespace)

	tree := datatree.New()
	x, ok := tree.FindChildElement(root, "x")
	require.True(t, ok)
	assert.Equal(t, "urn:example:x", x.(*datatree.Element).Namespace)

	y, ok := tree.FindChildElement(root, "y")
	require.True(t, ok)
	z, ok := tree.FindChildElement(y, "z")
	require.True(t, ok)
	assert.Equal(t, "hello", z.(*datatree.Element).Body)
}

func TestLoadModuleMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "modules.yaml")
	doc := "modules:\n  urn:example:r: example-root\n  urn:example:x: example-root\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	reg, err := loadModuleMap(path)
	require.NoError(t, err)

	e := datatree.NewElement("r").WithNamespace("urn:example:r")
	mod, err := reg.ModuleOf(e)
	require.NoError(t, err)
	assert.Equal(t, "example-root", mod.Name)
}

func TestFindByPath(t *testing.T) {
	root := datatree.NewElement("r")
	x := datatree.NewElement("x")
	y := datatree.NewElement("y")
	root.Append(x)
	x.Append(y)
	tree := datatree.New()

	found, err := findByPath(tree, root, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, y, found)

	_, err = findByPath(tree, root, []string{"missing"})
	assert.Error(t, err)

	same, err := findByPath(tree, root, nil)
	require.NoError(t, err)
	assert.Equal(t, root, same)
}

func TestParseAccessMode(t *testing.T) {
	_, err := parseAccessMode("bogus")
	assert.Error(t, err)

	m, err := parseAccessMode("delete")
	require.NoError(t, err)
	assert.Equal(t, "delete", m.String())
}

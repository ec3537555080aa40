package datatree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oba-ldap/nacm/internal/schema"
)

func TestCanonicalisePath(t *testing.T) {
	tree := New()
	reg := schema.NewRegistry()

	t.Run("prefix resolved through local namespace context", func(t *testing.T) {
		canonical, err := tree.CanonicalisePath("/n:group[name='admin']", map[string]string{"n": "ietf-netconf-acm"}, reg)
		require.NoError(t, err)
		assert.Equal(t, "/ietf-netconf-acm:group[name='admin']", canonical)
	})

	t.Run("unrecognised prefix passed through", func(t *testing.T) {
		canonical, err := tree.CanonicalisePath("/x:group", nil, reg)
		require.NoError(t, err)
		assert.Equal(t, "/x:group", canonical)
	})

	t.Run("malformed step is an error", func(t *testing.T) {
		_, err := tree.CanonicalisePath("/group[unterminated", nil, reg)
		assert.Error(t, err)
	})
}

func TestResolveInstanceID(t *testing.T) {
	reg := schema.NewRegistry()
	reg.Register("urn:acm", "ietf-netconf-acm")

	groups := NewElement("groups").WithNamespace("urn:acm")
	admin := NewElement("group").WithNamespace("urn:acm")
	admin.Append(NewElement("name").WithBody("admin"))
	guest := NewElement("group").WithNamespace("urn:acm")
	guest.Append(NewElement("name").WithBody("guest"))
	groups.Append(admin)
	groups.Append(guest)

	tree := New()

	t.Run("selects by module-qualified name", func(t *testing.T) {
		nodes, err := tree.ResolveInstanceID(groups, reg, "/ietf-netconf-acm:group")
		require.NoError(t, err)
		assert.Len(t, nodes, 2)
	})

	t.Run("bracket predicate filters by child text", func(t *testing.T) {
		nodes, err := tree.ResolveInstanceID(groups, reg, "/ietf-netconf-acm:group[name='admin']")
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		assert.Equal(t, admin, nodes[0])
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		nodes, err := tree.ResolveInstanceID(groups, reg, "/ietf-netconf-acm:group[name='nobody']")
		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("wildcard name matches any child", func(t *testing.T) {
		nodes, err := tree.ResolveInstanceID(groups, reg, "/*")
		require.NoError(t, err)
		assert.Len(t, nodes, 2)
	})
}

func TestToExprExpression(t *testing.T) {
	assert.Equal(t, "name==\"admin\"", toExprExpression("name=\"admin\""))
	assert.Equal(t, "name!=\"admin\"", toExprExpression("name!=\"admin\""))
	assert.Equal(t, "a==b && c==d", toExprExpression("a=b && c=d"))
}

package schema

import (
	"fmt"

	"github.com/oba-ldap/nacm/internal/nacm"
)

// Namespaced is implemented by any data-tree node type that carries a
// namespace URI, e.g. internal/datatree's *Element. The registry never
// depends on a concrete tree implementation — only on this interface.
type Namespaced interface {
	NamespaceURI() string
}

// Registry maps XML namespace URIs to the YANG module that defines them.
// It is the reference implementation of nacm.SchemaRegistry.
type Registry struct {
	byNamespace map[string]nacm.Module
}

// NewRegistry creates an empty module registry.
func NewRegistry() *Registry {
	return &Registry{byNamespace: make(map[string]nacm.Module)}
}

// Register associates namespace with moduleName. Registering the same
// namespace twice overwrites the previous association.
func (r *Registry) Register(namespace, moduleName string) {
	r.byNamespace[namespace] = nacm.Module{Name: moduleName}
}

// ModuleOf returns the module of node, identified by node's namespace
// URI. node must implement Namespaced.
func (r *Registry) ModuleOf(node nacm.Node) (nacm.Module, error) {
	ns, ok := node.(Namespaced)
	if !ok {
		return nacm.Module{}, fmt.Errorf("schema: node of type %T does not expose a namespace", node)
	}
	uri := ns.NamespaceURI()
	mod, ok := r.byNamespace[uri]
	if !ok {
		return nacm.Module{}, fmt.Errorf("schema: no module registered for namespace %q", uri)
	}
	return mod, nil
}

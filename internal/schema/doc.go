// Package schema provides a minimal YANG module registry: the schema
// collaborator the nacm engine consumes through nacm.SchemaRegistry
// (spec.md §6). It answers exactly one question, "what module does this
// data node belong to", by namespace lookup.
//
// # Example
//
//	reg := schema.NewRegistry()
//	reg.Register("urn:ietf:params:xml:ns:yang:ietf-netconf-acm", "ietf-netconf-acm")
//	reg.Register("urn:example:interfaces", "example-interfaces")
//
//	mod, err := reg.ModuleOf(node) // node must implement schema.Namespaced
package schema

// Package datatree is a reference implementation of the data-tree
// collaborator the nacm engine consumes through nacm.DataTree
// (spec.md §6). It is deliberately small: an in-memory element tree with
// element children, a body string, and the two per-node flags the read
// evaluator needs, plus instance-identifier path resolution built on
// github.com/expr-lang/expr for bracket predicates.
//
// A host embedding the engine against its own tree representation (a
// NETCONF/RESTCONF datastore, a YANG-aware store, ...) is expected to
// implement nacm.DataTree directly against that representation instead
// of adopting this package; this one exists to make the engine runnable
// and testable in this repository.
package datatree

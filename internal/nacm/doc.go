// Package nacm implements the access-control engine of RFC 8341 (NACM).
//
// # Overview
//
// The package answers three questions for an authenticated user against
// a policy tree and a data tree:
//
//   - may the user invoke a given RPC (evaluate_rpc)?
//   - may the user write to a given subtree (evaluate_write)?
//   - which parts of a given subtree may the user read (evaluate_read)?
//
// It is built from four cooperating pieces, leaves first:
//
//	PolicyView       read-only queries over a Policy document
//	Matcher          per-rule, per-request match predicate
//	Cache            per-request precomputation over rule-lists
//	Evaluators       EvaluateRPC / EvaluateWrite / EvaluateRead
//
// # Data-tree and schema collaborators
//
// The engine does not own a tree representation or a module registry; it
// consumes them through the DataTree and SchemaRegistry interfaces so a
// host can plug in its own (see internal/datatree and internal/schema for
// reference implementations).
//
// # Example
//
//	view := nacm.NewPolicyView(policy)
//	verdict, err := nacm.EvaluateRPC(nacm.RPCRequest{
//		Module:    "ietf-netconf",
//		Operation: "get-config",
//	}, "alice", view, nil)
//	if err != nil {
//		// FatalConfig or CollaboratorFailure
//	}
//	if verdict.Denied() {
//		// verdict.Error holds the access-denied payload
//	}
package nacm

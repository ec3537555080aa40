package nacm

// RPCRequest identifies an RPC invocation to authorize.
type RPCRequest struct {
	Module    string
	Operation string
}

// matchModule implements the module-name predicate shared by both
// matcher variants (spec.md §4.2.1 step 1, §4.2.2 step 1): a rule with no
// module-name never matches; "*" matches any module; otherwise the
// module names must be equal.
func matchModule(rule *Rule, actualModule string) bool {
	if !rule.HasModule {
		return false
	}
	return rule.ModuleName == "*" || rule.ModuleName == actualModule
}

// MatchRPC decides whether rule matches an RPC request, per spec.md
// §4.2.1 (RFC 8341 §3.4.4 step 7). It returns matched=false if the rule
// does not apply; otherwise action is the rule's prescribed action.
func MatchRPC(rule *Rule, req RPCRequest) (matched bool, action Action) {
	if !matchModule(rule, req.Module) {
		return false, ""
	}

	switch rule.Type {
	case RuleTypeAny:
		// no rpc-name/path/notification-name: matches any target.
	case RuleTypeRPC:
		if rule.RPCName != "*" && rule.RPCName != req.Operation {
			return false, ""
		}
	default:
		// wrong rule-type (path or notification-name) never matches an RPC.
		return false, ""
	}

	if !rule.AccessOperations.Matches(ModeExec) {
		return false, ""
	}

	return true, rule.Action
}

// MatchDataNode decides whether rule matches data node X, per spec.md
// §4.2.2 (RFC 8341 §3.4.5 step 6). nodes is the pre-evaluated set
// paths(R) for path-typed rules (empty/nil for rule-type-any); rules with
// rpc-name or notification-name must already have been filtered out by
// the Preparation Cache and are never passed here.
func MatchDataNode(rule *Rule, x Node, nodes []Node, mode AccessMode, tree DataTree, module string) (matched bool, action Action) {
	if !matchModule(rule, module) {
		return false, ""
	}

	if !rule.AccessOperations.Matches(mode) {
		return false, ""
	}

	switch rule.Type {
	case RuleTypeAny:
		return true, rule.Action
	case RuleTypePath:
		if nodeInOrUnderSet(x, nodes, tree) {
			return true, rule.Action
		}
		return false, ""
	default:
		return false, ""
	}
}

// nodeInOrUnderSet reports whether x is a member of nodes or has an
// ancestor in nodes (spec.md §4.2.2 step 2).
func nodeInOrUnderSet(x Node, nodes []Node, tree DataTree) bool {
	for _, n := range nodes {
		if x == n {
			return true
		}
		if tree.IsAncestor(x, n) {
			return true
		}
	}
	return false
}

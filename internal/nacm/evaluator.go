package nacm

// Verdict is the outcome of evaluate_rpc or evaluate_write (spec.md §3).
// evaluate_read has no Verdict: it mutates the tree in place and reports
// only collaborator/config failures.
type Verdict struct {
	Action Action
	Error  *DeniedAccessControl
}

// Denied reports whether the verdict is Deny.
func (v Verdict) Denied() bool {
	return v.Action == Deny
}

func permitVerdict() Verdict {
	return Verdict{Action: Permit}
}

func denyVerdict(err *DeniedAccessControl) Verdict {
	return Verdict{Action: Deny, Error: err}
}

// resolveGroups applies the group-resolution pre-check shared by
// EvaluateRPC and EvaluateWrite (spec.md §4.4 steps 4-5, §4.5): an
// unknown (empty) user, or a known user with no groups, is treated as
// having no applicable rule-lists — the caller falls through to its
// default step.
func resolveGroups(view *PolicyView, user string, externalGroups []string) []*Group {
	if user == "" {
		return nil
	}
	return view.GroupsFor(user, externalGroups)
}

// scanRuleListsRPC walks the applicable rule-lists and rules in document
// order looking for the first match, per spec.md §4.4 step 6 / §4.2.1.
// It returns matched=false if nothing in any applicable rule-list
// matches the request.
func scanRuleListsRPC(view *PolicyView, groups []*Group, req RPCRequest) (matched bool, action Action) {
	for _, rl := range view.RuleLists() {
		if !rl.AppliesToAnyGroup(groups) {
			continue
		}
		for _, rule := range rl.Rules {
			if ok, act := MatchRPC(rule, req); ok {
				return true, act
			}
		}
	}
	return false, ""
}

// EvaluateRPC decides whether user may invoke the RPC named in req,
// implementing spec.md §4.4 (RFC 8341 §3.4.4).
func EvaluateRPC(req RPCRequest, user string, view *PolicyView, externalGroups []string) (Verdict, error) {
	if view == nil || !view.Enabled() {
		return permitVerdict(), nil
	}
	if view.IsRecovery(user) {
		return permitVerdict(), nil
	}
	if req.Operation == "close-session" {
		return permitVerdict(), nil
	}

	groups := resolveGroups(view, user, externalGroups)
	if len(groups) > 0 {
		if matched, action := scanRuleListsRPC(view, groups, req); matched {
			if action == Permit {
				return permitVerdict(), nil
			}
			return denyVerdict(newDeniedRule()), nil
		}
	}

	// Default step (spec.md §4.4 step 7).
	if alwaysDefaultDenyRPCs[req.Operation] {
		return denyVerdict(newDeniedDefault()), nil
	}

	def, err := view.Default(ModeExec)
	if err != nil {
		return Verdict{}, err
	}
	if def == Permit {
		return permitVerdict(), nil
	}
	return denyVerdict(newDeniedDefault()), nil
}

// EvaluateWrite decides whether user may perform access (create, update,
// or delete) at requestedRoot within full, implementing spec.md §4.5
// (RFC 8341 §3.4.5). Descendant-deny semantics: the first denied node
// anywhere in the requested subtree aborts the whole write.
func EvaluateWrite(access AccessMode, requestedRoot, full Node, user string, view *PolicyView, tree DataTree, schema SchemaRegistry, externalGroups []string, nsctx LocalNSContext) (Verdict, error) {
	if view == nil || !view.Enabled() {
		return permitVerdict(), nil
	}
	if view.IsRecovery(user) {
		return permitVerdict(), nil
	}

	writeDefault, err := view.Default(access)
	if err != nil {
		return Verdict{}, err
	}

	groups := resolveGroups(view, user, externalGroups)

	cache, err := BuildCache(view, groups, access, full, tree, schema, nsctx)
	if err != nil {
		return Verdict{}, err
	}

	denied, err := writeCheckSubtree(requestedRoot, access, cache, tree, schema, writeDefault)
	if err != nil {
		return Verdict{}, err
	}
	if denied {
		return denyVerdict(newDeniedRule()), nil
	}
	return permitVerdict(), nil
}

// writeCheckSubtree is the recursive write check of spec.md §4.5. A
// return of denied=true anywhere aborts recursion; the caller does not
// need to inspect further nodes.
func writeCheckSubtree(x Node, access AccessMode, cache *Cache, tree DataTree, schema SchemaRegistry, writeDefault Action) (denied bool, err error) {
	module, err := schema.ModuleOf(x)
	if err != nil {
		return false, &CollaboratorFailure{Op: "ModuleOf", Err: err}
	}

	matchedHere := false
	for _, entry := range cache.Entries() {
		matched, action := matchWriteEntry(entry, x, access, tree, module.Name)
		if !matched {
			continue
		}
		matchedHere = true
		if action == Deny {
			return true, nil
		}
		break
	}

	if !matchedHere && writeDefault == Deny {
		return true, nil
	}

	for _, child := range tree.Children(x) {
		childDenied, err := writeCheckSubtree(child, access, cache, tree, schema, writeDefault)
		if err != nil {
			return false, err
		}
		if childDenied {
			return true, nil
		}
	}

	return false, nil
}

// matchWriteEntry applies §4.5 step 1's match rule for a single cache
// entry: path-typed entries match by set membership plus module-name;
// rule-type-any entries match by module-name alone.
func matchWriteEntry(entry CacheEntry, x Node, access AccessMode, tree DataTree, module string) (matched bool, action Action) {
	return MatchDataNode(entry.Rule, x, entry.Nodes, access, tree, module)
}

// EvaluateRead computes, for each root in requestedRoots, the subset of
// full readable by user, pruning denied subtrees in place (spec.md §4.6,
// RFC 8341 §3.4.5 read variant). Unlike EvaluateRPC/EvaluateWrite it
// never returns a deny verdict — only a FatalConfig or CollaboratorFailure
// halts the call.
func EvaluateRead(full Node, requestedRoots []Node, user string, view *PolicyView, tree DataTree, schema SchemaRegistry, externalGroups []string, nsctx LocalNSContext) error {
	if view == nil || !view.Enabled() {
		return nil
	}
	if view.IsRecovery(user) {
		return nil
	}

	readDefault, err := view.Default(ModeRead)
	if err != nil {
		return err
	}

	groups := resolveGroups(view, user, externalGroups)
	if len(groups) == 0 {
		for _, root := range requestedRoots {
			tree.Detach(root)
		}
		return nil
	}

	cache, err := BuildCache(view, groups, ModeRead, full, tree, schema, nsctx)
	if err != nil {
		return err
	}

	for _, root := range requestedRoots {
		if err := readTraverse(root, cache, tree, schema); err != nil {
			return err
		}
		if readDefault == Deny {
			tree.PruneUnmarked(root, FlagMark)
		}
		clearMarks(root, tree)
	}

	return nil
}

// readTraverse implements the per-node scan and depth-first traversal of
// spec.md §4.6.
func readTraverse(x Node, cache *Cache, tree DataTree, schema SchemaRegistry) error {
	module, err := schema.ModuleOf(x)
	if err != nil {
		return &CollaboratorFailure{Op: "ModuleOf", Err: err}
	}

	for _, entry := range cache.Entries() {
		matched, action := MatchDataNode(entry.Rule, x, entry.Nodes, ModeRead, tree, module.Name)
		if !matched {
			continue
		}
		if action == Deny {
			tree.SetFlag(x, FlagDelete)
		} else {
			tree.SetFlag(x, FlagMark)
		}
		break
	}

	if tree.HasFlag(x, FlagDelete) {
		return nil
	}

	for _, child := range tree.Children(x) {
		if err := readTraverse(child, cache, tree, schema); err != nil {
			return err
		}
		if tree.HasFlag(child, FlagDelete) {
			tree.Detach(child)
		}
	}

	return nil
}

// clearMarks removes the MARK flag from every node of the subtree,
// leaving the tree ready for a subsequent evaluate_read call (spec.md §8
// P5, read idempotence).
func clearMarks(root Node, tree DataTree) {
	tree.ClearFlag(root, FlagMark)
	for _, child := range tree.Children(root) {
		clearMarks(child, tree)
	}
}

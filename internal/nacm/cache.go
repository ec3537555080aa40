package nacm

// CacheEntry pairs a rule with the concrete node set its path resolves
// to. Nodes is nil for rule-type-any entries (spec.md §4.3 step 2c).
// Rule and the elements of Nodes are borrowed references, valid only for
// the duration of the evaluation that built the cache (spec.md §9).
type CacheEntry struct {
	Rule  *Rule
	Nodes []Node
}

// Cache is the per-request Preparation Cache (spec.md §4.3). It is built
// once before a data-node traversal and discarded when the evaluation
// returns.
type Cache struct {
	entries []CacheEntry
}

// Entries returns the cache contents in inter-rule-list, intra-rule-list
// document order.
func (c *Cache) Entries() []CacheEntry {
	if c == nil {
		return nil
	}
	return c.entries
}

// LocalNSContext resolves the namespace context a rule's path should be
// canonicalised against. A nil LocalNSContext gives every rule a nil
// context; a host with per-rule namespace metadata can supply its own.
type LocalNSContext func(rule *Rule) map[string]string

// BuildCache runs the Preparation Cache algorithm of spec.md §4.3: it
// filters rule-lists by the requestor's groups, filters rules by the
// requested access mode, and pre-evaluates each path-typed rule's
// instance-identifier into a concrete node set against tree root full.
//
// Rules with rpc-name or notification-name are skipped (step 2d); rules
// whose path resolves to an empty node set are dropped entirely (step
// 2b); rule-type-any rules that match the access mode are kept with a
// nil node set (step 2c).
func BuildCache(view *PolicyView, userGroups []*Group, mode AccessMode, full Node, tree DataTree, schema SchemaRegistry, nsctx LocalNSContext) (*Cache, error) {
	cache := &Cache{}

	for _, rl := range view.RuleLists() {
		if !rl.AppliesToAnyGroup(userGroups) {
			continue
		}

		for _, rule := range rl.Rules {
			if !rule.AccessOperations.Matches(mode) {
				continue
			}

			switch rule.Type {
			case RuleTypeRPC, RuleTypeNotification:
				continue

			case RuleTypePath:
				local := map[string]string(nil)
				if nsctx != nil {
					local = nsctx(rule)
				}

				canonical, err := tree.CanonicalisePath(rule.Path, local, schema)
				if err != nil {
					return nil, &CollaboratorFailure{Op: "CanonicalisePath", Err: err}
				}

				nodes, err := tree.ResolveInstanceID(full, schema, canonical)
				if err != nil {
					return nil, &CollaboratorFailure{Op: "ResolveInstanceID", Err: err}
				}

				if len(nodes) == 0 {
					continue
				}

				cache.entries = append(cache.entries, CacheEntry{Rule: rule, Nodes: nodes})

			case RuleTypeAny:
				cache.entries = append(cache.entries, CacheEntry{Rule: rule, Nodes: nil})
			}
		}
	}

	return cache, nil
}

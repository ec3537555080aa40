package nacm

// PolicyView is a read-only projection of a Policy into the concrete
// queries the engine needs (spec.md §4.1). It never materialises an
// alternative structure; every method reads straight through to the
// underlying Policy.
type PolicyView struct {
	policy *Policy
}

// NewPolicyView wraps a Policy for querying. policy may be nil, in which
// case Enabled reports false, Default returns a FatalConfig, and every
// other query returns its zero value; callers are expected to short-circuit on a nil policy the way
// spec.md §4.4/§4.5 step 1 does ("If Policy is absent ... Permit").
func NewPolicyView(policy *Policy) *PolicyView {
	return &PolicyView{policy: policy}
}

// Enabled reports whether enable-nacm is true.
func (v *PolicyView) Enabled() bool {
	return v.policy != nil && v.policy.EnableNACM
}

// IsRecovery reports whether user is the configured recovery user.
func (v *PolicyView) IsRecovery(user string) bool {
	return v.policy != nil && user != "" && user == v.policy.RecoveryUser
}

// Default returns the configured default action for the given mode kind
// (read, write, or exec). write-default is mandatory: its absence is a
// FatalConfig, per spec.md §4.1. read-default and exec-default default to
// Permit when absent.
func (v *PolicyView) Default(mode AccessMode) (Action, error) {
	if v.policy == nil {
		return "", &FatalConfig{Reason: "no policy loaded"}
	}
	switch mode {
	case ModeRead:
		if v.policy.HasReadDefault {
			return v.policy.ReadDefault, nil
		}
		return Permit, nil
	case ModeExec:
		if v.policy.HasExecDefault {
			return v.policy.ExecDefault, nil
		}
		return Permit, nil
	case ModeCreate, ModeUpdate, ModeDelete:
		if !v.policy.HasWriteDefault {
			return "", &FatalConfig{Reason: "write-default is required but absent"}
		}
		return v.policy.WriteDefault, nil
	default:
		return "", &FatalConfig{Reason: "unrecognised access mode"}
	}
}

// GroupsFor returns every group whose user-name list contains user, in
// document order. If enable-external-groups is set, externalGroups (names
// supplied by the transport layer) are unioned in by matching group name
// (spec.md §4.1, SPEC_FULL.md §5.1).
func (v *PolicyView) GroupsFor(user string, externalGroups []string) []*Group {
	if v.policy == nil || user == "" {
		return nil
	}

	var result []*Group
	seen := make(map[string]struct{})

	for _, g := range v.policy.Groups {
		if g.HasUser(user) {
			result = append(result, g)
			seen[g.Name] = struct{}{}
		}
	}

	if v.policy.EnableExternalGroups {
		for _, name := range externalGroups {
			if _, already := seen[name]; already {
				continue
			}
			for _, g := range v.policy.Groups {
				if g.Name == name {
					result = append(result, g)
					seen[name] = struct{}{}
					break
				}
			}
		}
	}

	return result
}

// RuleLists returns the policy's rule-lists in document order.
func (v *PolicyView) RuleLists() []*RuleList {
	if v.policy == nil {
		return nil
	}
	return v.policy.RuleLists
}

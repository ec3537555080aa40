package policyio

import (
	"fmt"

	"github.com/oba-ldap/nacm/internal/nacm"
)

// Validate checks a decoded policy for the mandatory fields spec.md §4.1
// requires. write-default absence is caught here, at load time, rather
// than deferred to the first write evaluation — the original
// implementation validates this once when the NACM tree is parsed
// (SPEC_FULL.md §5.3).
func Validate(policy *nacm.Policy) []error {
	var errs []error

	if policy == nil {
		return []error{fmt.Errorf("policyio: policy is nil")}
	}

	if !policy.HasWriteDefault {
		errs = append(errs, &nacm.FatalConfig{Reason: "write-default is required"})
	} else if !policy.WriteDefault.IsValid() {
		errs = append(errs, fmt.Errorf("policyio: invalid write-default %q", policy.WriteDefault))
	}

	if policy.HasReadDefault && !policy.ReadDefault.IsValid() {
		errs = append(errs, fmt.Errorf("policyio: invalid read-default %q", policy.ReadDefault))
	}
	if policy.HasExecDefault && !policy.ExecDefault.IsValid() {
		errs = append(errs, fmt.Errorf("policyio: invalid exec-default %q", policy.ExecDefault))
	}

	seenGroups := make(map[string]struct{}, len(policy.Groups))
	for _, g := range policy.Groups {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("policyio: group with empty name"))
			continue
		}
		seenGroups[g.Name] = struct{}{}
	}

	for i, rl := range policy.RuleLists {
		if rl.Name == "" {
			errs = append(errs, fmt.Errorf("policyio: rule-list %d: name is required", i))
		}
		for j, rule := range rl.Rules {
			if rule.Name == "" {
				errs = append(errs, fmt.Errorf("policyio: rule-list %q rule %d: name is required", rl.Name, j))
			}
			if rule.Action != "" && !rule.Action.IsValid() {
				errs = append(errs, fmt.Errorf("policyio: rule-list %q rule %q: invalid action %q", rl.Name, rule.Name, rule.Action))
			}
			if rule.Action == "" {
				errs = append(errs, fmt.Errorf("policyio: rule-list %q rule %q: action is mandatory", rl.Name, rule.Name))
			}
		}
	}

	return errs
}

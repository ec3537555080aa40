package policyio

import (
	"github.com/oba-ldap/nacm/internal/nacm"
)

// document is the on-disk YAML shape of a NACM policy (RFC 8341 §3.4,
// carried over the ietf-netconf-acm YANG module's structure).
type document struct {
	EnableNACM           *bool         `yaml:"enable-nacm"`
	ReadDefault          string        `yaml:"read-default"`
	WriteDefault         string        `yaml:"write-default"`
	ExecDefault          string        `yaml:"exec-default"`
	EnableExternalGroups bool          `yaml:"enable-external-groups"`
	Groups               []groupDoc    `yaml:"groups"`
	RuleLists            []ruleListDoc `yaml:"rule-list"`
}

type groupDoc struct {
	Name     string   `yaml:"name"`
	UserName []string `yaml:"user-name"`
}

type ruleListDoc struct {
	Name  string    `yaml:"name"`
	Group []string  `yaml:"group"`
	Rule  []ruleDoc `yaml:"rule"`
}

type ruleDoc struct {
	Name             string  `yaml:"name"`
	ModuleName       *string `yaml:"module-name"`
	RPCName          *string `yaml:"rpc-name"`
	Path             *string `yaml:"path"`
	NotificationName *string `yaml:"notification-name"`
	AccessOperations string  `yaml:"access-operations"`
	Action           string  `yaml:"action"`
}

// toPolicy converts a decoded document into an *nacm.Policy. recoveryUser
// comes from the host's own configuration, not from the policy document
// itself (spec.md §9: "the surrounding service holds the recovery-user
// name ... the engine consumes [it] as a parameter").
func (d *document) toPolicy(recoveryUser string) (*nacm.Policy, error) {
	policy := &nacm.Policy{
		RecoveryUser:         recoveryUser,
		EnableExternalGroups: d.EnableExternalGroups,
	}

	if d.EnableNACM != nil {
		policy.EnableNACM = *d.EnableNACM
	}

	if d.ReadDefault != "" {
		policy.ReadDefault = nacm.Action(d.ReadDefault)
		policy.HasReadDefault = true
	}
	if d.ExecDefault != "" {
		policy.ExecDefault = nacm.Action(d.ExecDefault)
		policy.HasExecDefault = true
	}
	if d.WriteDefault != "" {
		policy.WriteDefault = nacm.Action(d.WriteDefault)
		policy.HasWriteDefault = true
	}

	for _, g := range d.Groups {
		group := &nacm.Group{Name: g.Name, Users: make(map[string]struct{}, len(g.UserName))}
		for _, u := range g.UserName {
			group.Users[u] = struct{}{}
		}
		policy.Groups = append(policy.Groups, group)
	}

	for _, rl := range d.RuleLists {
		ruleList := &nacm.RuleList{Name: rl.Name, Groups: make(map[string]struct{}, len(rl.Group))}
		for _, g := range rl.Group {
			ruleList.Groups[g] = struct{}{}
		}
		for _, r := range rl.Rule {
			rule, err := r.toRule()
			if err != nil {
				return nil, err
			}
			ruleList.Rules = append(ruleList.Rules, rule)
		}
		policy.RuleLists = append(policy.RuleLists, ruleList)
	}

	return policy, nil
}

func (r *ruleDoc) toRule() (*nacm.Rule, error) {
	rule := &nacm.Rule{
		Name:             r.Name,
		AccessOperations: nacm.ParseAccessOperations(r.AccessOperations),
		Action:           nacm.Action(r.Action),
	}

	if r.ModuleName != nil {
		rule.HasModule = true
		rule.ModuleName = *r.ModuleName
	}

	switch {
	case r.RPCName != nil:
		rule.Type = nacm.RuleTypeRPC
		rule.RPCName = *r.RPCName
	case r.Path != nil:
		rule.Type = nacm.RuleTypePath
		rule.Path = *r.Path
	case r.NotificationName != nil:
		rule.Type = nacm.RuleTypeNotification
		rule.NotificationName = *r.NotificationName
	default:
		rule.Type = nacm.RuleTypeAny
	}

	return rule, nil
}

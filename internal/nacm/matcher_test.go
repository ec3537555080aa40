package nacm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ruleAny(module string, ops string, action Action) *Rule {
	return &Rule{HasModule: true, ModuleName: module, Type: RuleTypeAny, AccessOperations: ParseAccessOperations(ops), Action: action}
}

func TestMatchModule(t *testing.T) {
	assert.False(t, matchModule(&Rule{HasModule: false}, "ietf-netconf"))
	assert.True(t, matchModule(&Rule{HasModule: true, ModuleName: "*"}, "ietf-netconf"))
	assert.True(t, matchModule(&Rule{HasModule: true, ModuleName: "ietf-netconf"}, "ietf-netconf"))
	assert.False(t, matchModule(&Rule{HasModule: true, ModuleName: "ietf-netconf"}, "ietf-interfaces"))
}

func TestMatchRPC(t *testing.T) {
	t.Run("rule-type-any matches any operation", func(t *testing.T) {
		rule := ruleAny("ietf-netconf", "exec", Permit)
		matched, action := MatchRPC(rule, RPCRequest{Module: "ietf-netconf", Operation: "get-config"})
		assert.True(t, matched)
		assert.Equal(t, Permit, action)
	})

	t.Run("rpc-name must match", func(t *testing.T) {
		rule := &Rule{HasModule: true, ModuleName: "ietf-netconf", Type: RuleTypeRPC, RPCName: "edit-config", AccessOperations: ParseAccessOperations("exec"), Action: Deny}
		matched, _ := MatchRPC(rule, RPCRequest{Module: "ietf-netconf", Operation: "get-config"})
		assert.False(t, matched)

		matched2, action2 := MatchRPC(rule, RPCRequest{Module: "ietf-netconf", Operation: "edit-config"})
		assert.True(t, matched2)
		assert.Equal(t, Deny, action2)
	})

	t.Run("wrong rule type never matches", func(t *testing.T) {
		rule := &Rule{HasModule: true, ModuleName: "*", Type: RuleTypePath, Path: "/foo", AccessOperations: ParseAccessOperations("exec"), Action: Permit}
		matched, _ := MatchRPC(rule, RPCRequest{Module: "ietf-netconf", Operation: "get-config"})
		assert.False(t, matched)
	})

	t.Run("access-operations must include exec", func(t *testing.T) {
		rule := ruleAny("ietf-netconf", "read", Permit)
		matched, _ := MatchRPC(rule, RPCRequest{Module: "ietf-netconf", Operation: "get-config"})
		assert.False(t, matched)
	})
}

func TestMatchDataNode(t *testing.T) {
	tree := newFakeTree()
	root := newFakeNode("root", "ietf-interfaces")
	target := newFakeNode("interface", "ietf-interfaces")
	root.addChild(target)
	child := newFakeNode("name", "ietf-interfaces")
	target.addChild(child)

	t.Run("rule-type-any matches by module only", func(t *testing.T) {
		rule := ruleAny("ietf-interfaces", "read", Permit)
		matched, action := MatchDataNode(rule, target, nil, ModeRead, tree, "ietf-interfaces")
		assert.True(t, matched)
		assert.Equal(t, Permit, action)
	})

	t.Run("path rule matches node in set", func(t *testing.T) {
		rule := &Rule{HasModule: true, ModuleName: "ietf-interfaces", Type: RuleTypePath, Path: "/interfaces/interface", AccessOperations: ParseAccessOperations("read"), Action: Deny}
		matched, action := MatchDataNode(rule, target, []Node{target}, ModeRead, tree, "ietf-interfaces")
		assert.True(t, matched)
		assert.Equal(t, Deny, action)
	})

	t.Run("path rule matches descendant of set member", func(t *testing.T) {
		rule := &Rule{HasModule: true, ModuleName: "ietf-interfaces", Type: RuleTypePath, Path: "/interfaces/interface", AccessOperations: ParseAccessOperations("read"), Action: Deny}
		matched, _ := MatchDataNode(rule, child, []Node{target}, ModeRead, tree, "ietf-interfaces")
		assert.True(t, matched)
	})

	t.Run("path rule does not match node outside set", func(t *testing.T) {
		other := newFakeNode("other", "ietf-interfaces")
		rule := &Rule{HasModule: true, ModuleName: "ietf-interfaces", Type: RuleTypePath, Path: "/interfaces/interface", AccessOperations: ParseAccessOperations("read"), Action: Deny}
		matched, _ := MatchDataNode(rule, other, []Node{target}, ModeRead, tree, "ietf-interfaces")
		assert.False(t, matched)
	})

	t.Run("rpc-typed rule never matches a data node", func(t *testing.T) {
		rule := &Rule{HasModule: true, ModuleName: "*", Type: RuleTypeRPC, RPCName: "*", AccessOperations: ParseAccessOperations("read"), Action: Deny}
		matched, _ := MatchDataNode(rule, target, nil, ModeRead, tree, "ietf-interfaces")
		assert.False(t, matched)
	})
}

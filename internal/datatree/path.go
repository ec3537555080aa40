package datatree

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/oba-ldap/nacm/internal/nacm"
)

// step is one '/'-separated component of an instance-identifier path:
// an optional module prefix, a local element name, and an optional
// bracket predicate (e.g. "nacm:group[name='admin']").
type step struct {
	module    string
	name      string
	predicate string
}

var stepPattern = regexp.MustCompile(`^(?:([\w.-]+):)?([\w.-]+|\*)(?:\[(.+)\])?$`)

func parseSteps(path string) ([]step, error) {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil, nil
	}
	parts := strings.Split(path, "/")
	steps := make([]step, 0, len(parts))
	for _, p := range parts {
		m := stepPattern.FindStringSubmatch(p)
		if m == nil {
			return nil, fmt.Errorf("datatree: malformed path step %q", p)
		}
		steps = append(steps, step{module: m[1], name: m[2], predicate: m[3]})
	}
	return steps, nil
}

// CanonicalisePath resolves a rule's path expression against its local
// namespace context, rewriting any prefix that appears in localNSCtx
// (prefix -> module name) to its module name so ResolveInstanceID never
// has to consult localNSCtx again. Prefixes absent from localNSCtx are
// passed through unchanged (they are assumed already canonical, e.g. a
// bare module name).
func (t *Tree) CanonicalisePath(path string, localNSCtx map[string]string, schema nacm.SchemaRegistry) (string, error) {
	steps, err := parseSteps(path)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, s := range steps {
		b.WriteByte('/')
		module := s.module
		if resolved, ok := localNSCtx[s.module]; ok {
			module = resolved
		}
		if module != "" {
			b.WriteString(module)
			b.WriteByte(':')
		}
		b.WriteString(s.name)
		if s.predicate != "" {
			b.WriteByte('[')
			b.WriteString(s.predicate)
			b.WriteByte(']')
		}
	}
	return b.String(), nil
}

// ResolveInstanceID resolves a canonical instance-identifier path against
// root, returning every node it selects. An empty result is not an
// error — the Preparation Cache drops such rules (spec.md §4.3 step 2b).
func (t *Tree) ResolveInstanceID(root nacm.Node, schema nacm.SchemaRegistry, canonicalPath string) ([]nacm.Node, error) {
	steps, err := parseSteps(canonicalPath)
	if err != nil {
		return nil, err
	}

	current := []*Element{asElement(root)}
	if current[0] == nil {
		return nil, fmt.Errorf("datatree: root is not an *Element")
	}

	for _, s := range steps {
		var program *vm.Program
		if s.predicate != "" {
			program, err = compilePredicate(s.predicate)
			if err != nil {
				return nil, fmt.Errorf("datatree: predicate %q: %w", s.predicate, err)
			}
		}

		var next []*Element
		for _, node := range current {
			for _, child := range node.children {
				if !matchesStep(child, s, schema) {
					continue
				}
				if program != nil {
					ok, err := runPredicate(program, child)
					if err != nil {
						return nil, fmt.Errorf("datatree: predicate %q: %w", s.predicate, err)
					}
					if !ok {
						continue
					}
				}
				next = append(next, child)
			}
		}
		current = next
		if len(current) == 0 {
			break
		}
	}

	out := make([]nacm.Node, len(current))
	for i, e := range current {
		out[i] = e
	}
	return out, nil
}

func matchesStep(child *Element, s step, schema nacm.SchemaRegistry) bool {
	if s.name != "*" && child.Name != s.name {
		return false
	}
	if s.module == "" {
		return true
	}
	mod, err := schema.ModuleOf(child)
	if err != nil {
		return false
	}
	return mod.Name == s.module
}

// exprAssign rewrites XPath-style "name='value'" comparisons into the
// "==" expr-lang expects, without disturbing "!=", "<=", ">=" or an
// already-doubled "==".
var exprAssign = regexp.MustCompile(`([^=!<>])=([^=])`)

func toExprExpression(predicate string) string {
	return exprAssign.ReplaceAllString(predicate, "$1==$2")
}

func compilePredicate(predicate string) (*vm.Program, error) {
	env := map[string]any{}
	return expr.Compile(toExprExpression(predicate), expr.Env(env), expr.AllowUndefinedVariables())
}

// runPredicate evaluates a compiled predicate against a candidate
// element's child bodies (env["childName"] = childBody) and its own
// body (env["text"]).
func runPredicate(program *vm.Program, e *Element) (bool, error) {
	env := map[string]any{"text": e.Body}
	for _, c := range e.children {
		env[c.Name] = c.Body
	}
	for k, v := range e.Attrs {
		env[k] = v
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("predicate did not evaluate to a boolean, got %T", out)
	}
	return b, nil
}

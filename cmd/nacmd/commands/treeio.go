package commands

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oba-ldap/nacm/internal/datatree"
	"github.com/oba-ldap/nacm/internal/schema"
)

// loadTree reads an XML document from path into a datatree.Element tree.
// Each element's XML namespace becomes its NACM namespace; a text-only
// element's character data becomes its Body.
func loadTree(path string) (*datatree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tree %s: %w", path, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)

	var root *datatree.Element
	var stack []*datatree.Element

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse tree %s: %w", path, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			e := datatree.NewElement(t.Name.Local).WithNamespace(t.Name.Space)
			if len(t.Attr) > 0 {
				e.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					e.Attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) > 0 {
				stack[len(stack)-1].Append(e)
			} else {
				root = e
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				text := string(t)
				if trimmed := trimSpace(text); trimmed != "" {
					stack[len(stack)-1].Body = trimmed
				}
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse tree %s: no root element", path)
	}
	return root, nil
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// moduleMapDoc is the on-disk shape of a namespace-to-module map.
type moduleMapDoc struct {
	Modules map[string]string `yaml:"modules"`
}

// loadModuleMap reads a namespace -> module-name YAML map from path and
// builds a schema.Registry from it.
func loadModuleMap(path string) (*schema.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open module map %s: %w", path, err)
	}
	var doc moduleMapDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse module map %s: %w", path, err)
	}
	reg := schema.NewRegistry()
	for namespace, module := range doc.Modules {
		reg.Register(namespace, module)
	}
	return reg, nil
}

// findByPath walks dot-separated child names from root, using the first
// matching child element at each step. It is a convenience for locating a
// request root or write target from the command line, not a substitute
// for DataTree.ResolveInstanceID.
func findByPath(tree *datatree.Tree, root *datatree.Element, names []string) (*datatree.Element, error) {
	cur := root
	for _, name := range names {
		if name == "" {
			continue
		}
		child, ok := tree.FindChildElement(cur, name)
		if !ok {
			return nil, fmt.Errorf("no such child %q under %q", name, cur.Name)
		}
		cur = child.(*datatree.Element)
	}
	return cur, nil
}

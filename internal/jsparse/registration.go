package jsparse

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
)

// DefaultNamespaces are the receiver identifiers accepted for the
// registration call when the caller does not supply its own set.
var DefaultNamespaces = []string{"Ext"}

// Registration is one located class-registration call:
// <namespace>.define("Qualified.Name", { ... }).
type Registration struct {
	// Name is the qualified name literal of the first argument.
	Name string
	// config is the object-literal second argument; nil when the call
	// carried none.
	config *sitter.Node
	src    []byte
}

// FindRegistration locates the first registration call in the file whose
// receiver is one of the given namespace identifiers. It returns nil when
// the file registers nothing. The file's tree is parsed on demand.
func (f *SourceFile) FindRegistration(ctx context.Context, namespaces []string) (*Registration, error) {
	if len(namespaces) == 0 {
		namespaces = DefaultNamespaces
	}
	tree, err := f.Tree(ctx)
	if err != nil {
		return nil, err
	}
	call := findDefineCall(tree.RootNode(), f.src, namespaces)
	if call == nil {
		return nil, nil
	}
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return nil, nil
	}
	var name string
	var config *sitter.Node
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		switch arg.Type() {
		case "string":
			if name == "" {
				name = stringContent(arg, f.src)
			}
		case "object":
			if config == nil {
				config = arg
			}
		}
	}
	if name == "" {
		return nil, nil
	}
	return &Registration{Name: name, config: config, src: f.src}, nil
}

// findDefineCall walks the tree depth-first for a call_expression whose
// callee is <ns>.define with ns in namespaces.
func findDefineCall(node *sitter.Node, src []byte, namespaces []string) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() == "call_expression" {
		if callee := node.ChildByFieldName("function"); callee != nil && callee.Type() == "member_expression" {
			obj := callee.ChildByFieldName("object")
			prop := callee.ChildByFieldName("property")
			if obj != nil && prop != nil &&
				obj.Type() == "identifier" && text(prop, src) == "define" {
				recv := text(obj, src)
				for _, ns := range namespaces {
					if recv == ns {
						return node
					}
				}
			}
		}
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if found := findDefineCall(node.NamedChild(i), src, namespaces); found != nil {
			return found
		}
	}
	return nil
}

// text returns the raw source text of a node.
func text(node *sitter.Node, src []byte) string {
	return string(src[node.StartByte():node.EndByte()])
}

// stringContent returns the content of a string literal without quotes.
func stringContent(node *sitter.Node, src []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "string_fragment" {
			return text(child, src)
		}
	}
	// Empty string literal, or a grammar without string_fragment nodes.
	raw := text(node, src)
	if len(raw) >= 2 {
		return raw[1 : len(raw)-1]
	}
	return raw
}

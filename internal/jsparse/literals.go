package jsparse

import sitter "github.com/smacker/go-tree-sitter"

// StringField reads the string-literal value of the named key in the
// registration's configuration object. Missing keys and non-string values
// yield "".
func (r *Registration) StringField(key string) string {
	value := r.field(key)
	if value == nil || value.Type() != "string" {
		return ""
	}
	return stringContent(value, r.src)
}

// ListField reads the named key as a list of string literals. A bare
// string value is treated as a single-element list, matching the
// framework's own leniency. Non-literal elements are skipped.
func (r *Registration) ListField(key string) []string {
	value := r.field(key)
	if value == nil {
		return nil
	}
	switch value.Type() {
	case "string":
		return []string{stringContent(value, r.src)}
	case "array":
		var out []string
		for i := 0; i < int(value.NamedChildCount()); i++ {
			elem := value.NamedChild(i)
			if elem.Type() == "string" {
				out = append(out, stringContent(elem, r.src))
			}
		}
		return out
	}
	return nil
}

// field returns the value node of the first pair whose key matches.
// Keys may be identifiers or quoted strings.
func (r *Registration) field(key string) *sitter.Node {
	if r.config == nil {
		return nil
	}
	for i := 0; i < int(r.config.NamedChildCount()); i++ {
		pair := r.config.NamedChild(i)
		if pair.Type() != "pair" {
			continue
		}
		k := pair.ChildByFieldName("key")
		if k == nil {
			continue
		}
		var name string
		switch k.Type() {
		case "property_identifier":
			name = text(k, r.src)
		case "string":
			name = stringContent(k, r.src)
		default:
			continue
		}
		if name == key {
			return pair.ChildByFieldName("value")
		}
	}
	return nil
}

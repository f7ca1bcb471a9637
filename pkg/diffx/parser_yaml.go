// parser_yaml.go - YAML → Value (spec.md §4.7).
//
// Built on gopkg.in/yaml.v3, walking the yaml.Node tree directly rather
// than decoding into interface{} — the same technique as the teacher's
// ordered_map.go nodeToInterface, adapted to build Value instead of
// *OrderedMap. Merge keys ("<<") and alias cycle detection are carried
// over from the teacher unchanged in spirit.
package diffx

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a single YAML document into a Value (spec.md §4.7).
// Only the first document in a multi-document stream is used; diffx
// operates on one tree per side.
func ParseYAML(content []byte) (Value, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(content)).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return Null, nil
		}
		return Value{}, newDiffError("parse_yaml", "", err)
	}

	return yamlNodeToValue(&node, make(map[*yaml.Node]bool)), nil
}

func yamlNodeToValue(node *yaml.Node, seen map[*yaml.Node]bool) Value {
	if node == nil {
		return Null
	}

	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Null
		}
		return yamlNodeToValue(node.Content[0], seen)
	}

	switch node.Kind {
	case yaml.MappingNode:
		m := NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Value == "<<" {
				merged := yamlNodeToValue(node.Content[i+1], seen)
				if merged.Kind == KindMapping {
					for _, mk := range merged.Keys {
						if _, exists := m.Map[mk]; !exists {
							m.Set(mk, merged.Map[mk])
						}
					}
				}
				continue
			}
			m.Set(keyNode.Value, yamlNodeToValue(node.Content[i+1], seen))
		}
		return m

	case yaml.SequenceNode:
		elems := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			elems = append(elems, yamlNodeToValue(child, seen))
		}
		return NewSequence(elems...)

	case yaml.ScalarNode:
		return yamlScalarToValue(node)

	case yaml.AliasNode:
		if seen[node.Alias] {
			return Null
		}
		seen[node.Alias] = true
		v := yamlNodeToValue(node.Alias, seen)
		delete(seen, node.Alias)
		return v

	default:
		return Null
	}
}

// yamlScalarToValue applies the 1.1-compatible core schema (spec.md §4.7):
// plain true/false/null recognised, untagged scalars typed by value.
func yamlScalarToValue(node *yaml.Node) Value {
	if node.Tag == "!!null" {
		return Null
	}
	if node.Tag == "!!str" {
		return NewString(node.Value)
	}

	switch node.Tag {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err == nil {
			return NewBool(b)
		}
	case "!!int":
		if i, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return NewInteger(i)
		}
		var f float64
		if err := node.Decode(&f); err == nil {
			return NewFloat(f)
		}
	case "!!float":
		var f float64
		if err := node.Decode(&f); err == nil {
			return NewFloat(f)
		}
	}

	return NewString(node.Value)
}

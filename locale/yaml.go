package locale

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"
)

// LoadYAML reads a string table from r. See ParseYAML.
func LoadYAML(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrInvalidTable, err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a string table. Nested mappings are flattened with "."
// so that
//
//	errors:
//	  notFound: "%@ was not found"
//
// yields the key "errors.notFound". Leaves must be scalars.
func ParseYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	entries := make(map[string]string)
	if len(doc.Content) == 0 {
		return NewTable(entries), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping", ErrInvalidTable, root.Line)
	}
	if err := flatten("", root, entries); err != nil {
		return nil, err
	}
	return NewTable(entries), nil
}

func flatten(prefix string, node *yaml.Node, out map[string]string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		key := keyNode.Value
		if prefix != "" {
			key = prefix + "." + key
		}

		if valNode.Kind == yaml.AliasNode && valNode.Alias != nil {
			valNode = valNode.Alias
		}

		switch valNode.Kind {
		case yaml.ScalarNode:
			out[key] = valNode.Value
		case yaml.MappingNode:
			if err := flatten(key, valNode, out); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: line %d: value of %q must be a string or mapping", ErrInvalidTable, valNode.Line, key)
		}
	}
	return nil
}

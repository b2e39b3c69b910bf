package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"modelmap/internal/common"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = common.Unique(arr)

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// --- PropertyRef YAML methods ---

// UnmarshalYAML accepts the shorthand "Type.name" or a {type, name} map.
func (p *PropertyRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		typeName, name, ok := strings.Cut(str, ".")
		if !ok || typeName == "" || name == "" {
			return fmt.Errorf("line %d: invalid property reference %q (expected Type.name)", node.Line, str)
		}

		*p = PropertyRef{Type: typeName, Name: name}

		return nil

	case yaml.MappingNode:
		// plain alias avoids recursing into this method
		type plain PropertyRef

		var v plain

		err := node.Decode(&v)
		if err != nil {
			return err
		}

		if v.Name == "" {
			return errors.New("property reference requires a name")
		}

		*p = PropertyRef(v)

		return nil

	default:
		return fmt.Errorf("line %d: expected string or map for property reference, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML outputs the "Type.name" shorthand.
func (p PropertyRef) MarshalYAML() (any, error) {
	return p.String(), nil
}

// --- MappingConfig YAML methods ---

// UnmarshalYAML decodes a mapping and treats a key that is present with a
// null value as configured: a bare "includes:" or "excludes:" is an empty
// section that selects nothing, and a bare default namespace key is the
// explicit empty namespace.
func (m *MappingConfig) UnmarshalYAML(node *yaml.Node) error {
	// plain alias avoids recursing into this method
	type plain MappingConfig

	var v plain

	err := node.Decode(&v)
	if err != nil {
		return err
	}

	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i+1].ShortTag() != "!!null" {
				continue
			}

			switch node.Content[i].Value {
			case "includes":
				v.Includes = &RulesConfig{}
			case "excludes":
				v.Excludes = &RulesConfig{}
			case "default_element_namespace_uri":
				v.DefaultElementNamespaceURI = new(string)
			case "default_attribute_namespace_uri":
				v.DefaultAttributeNamespaceURI = new(string)
			}
		}
	}

	*m = MappingConfig(v)

	return nil
}

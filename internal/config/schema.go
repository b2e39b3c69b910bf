package config

import (
	"modelmap/internal/model"
	"modelmap/internal/rules"
)

// ModulesFile represents the root of a YAML mapping configuration file.
type ModulesFile struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// MapUnconfiguredPackages adds a whole-package mapping for every graph
	// package that no mapping names.
	MapUnconfiguredPackages bool `yaml:"map_unconfigured_packages,omitempty"`

	// Mappings are built in declaration order.
	Mappings []MappingConfig `yaml:"mappings"`
}

// MappingConfig describes one mapping unit.
type MappingConfig struct {
	// ID is used only to reference this mapping from dependencies_of.
	ID string `yaml:"id,omitempty"`

	// Name is the user-facing mapping name. Defaults to a name derived
	// from Package.
	Name string `yaml:"name,omitempty"`

	// Package is the model package to partition.
	Package string `yaml:"package"`

	// DefaultElementNamespaceURI pins the default element namespace.
	// nil means "infer"; a pointer to "" is an explicit empty namespace.
	DefaultElementNamespaceURI *string `yaml:"default_element_namespace_uri,omitempty"`

	// DefaultAttributeNamespaceURI pins the default attribute namespace.
	// nil means "infer"; a pointer to "" is an explicit empty namespace.
	DefaultAttributeNamespaceURI *string `yaml:"default_attribute_namespace_uri,omitempty"`

	// Includes selects nodes to map. nil (key absent) maps the whole
	// package; a bare "includes:" key is an empty section.
	Includes *RulesConfig `yaml:"includes,omitempty"`

	// Excludes selects nodes never to map.
	Excludes *RulesConfig `yaml:"excludes,omitempty"`
}

// String returns "[id:name]".
func (m *MappingConfig) String() string {
	return "[" + m.ID + ":" + m.Name + "]"
}

// RulesConfig is the include or exclude section of a mapping.
type RulesConfig struct {
	Types      StringOrArray `yaml:"types,omitempty"`
	Elements   StringOrArray `yaml:"elements,omitempty"`
	Properties []PropertyRef `yaml:"properties,omitempty"`

	// DependenciesOf lists mapping ids whose dependencies are included.
	// Only meaningful under includes.
	DependenciesOf StringOrArray `yaml:"dependencies_of,omitempty"`
}

// PropertyRef identifies a property by owning type and property name.
type PropertyRef struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`
}

// String returns "Type.name".
func (p PropertyRef) String() string {
	return model.PropertyKey(p.Type, p.Name)
}

// RuleSet converts the section into a rule set. A nil section yields nil,
// which the resolver treats as "not configured".
func (c *RulesConfig) RuleSet() *rules.RuleSet {
	if c == nil {
		return nil
	}

	s := &rules.RuleSet{}

	for _, name := range c.Types {
		s.Add(rules.TypeRule(name))
	}

	for _, name := range c.Elements {
		s.Add(rules.Rule{Kind: model.KindElement, Name: name})
	}

	for _, p := range c.Properties {
		s.Add(rules.PropertyRule(p.Type, p.Name))
	}

	s.DependOn(c.DependenciesOf...)

	return s
}

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

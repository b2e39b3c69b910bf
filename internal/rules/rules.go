// Package rules defines the reference rules that select model nodes for
// inclusion in or exclusion from a mapping.
//
// The three rule kinds (type, element, property) share one implementation
// parameterized by model.NodeKind. A rule that does not resolve against the
// graph selects nothing; it is never an error.
package rules

import (
	"fmt"

	"modelmap/internal/model"
)

// Rule locates at most one node in a package.
type Rule struct {
	Kind model.NodeKind
	// Name is the local type name (type rules), the element name in Clark
	// notation (element rules) or the property name (property rules).
	Name string
	// Type is the local name of the owning type (property rules only).
	Type string
}

// TypeRule creates a rule selecting the type with the given local name.
func TypeRule(name string) Rule {
	return Rule{Kind: model.KindType, Name: name}
}

// ElementRule creates a rule selecting a global element.
func ElementRule(name model.QName) Rule {
	return Rule{Kind: model.KindElement, Name: name.String()}
}

// PropertyRule creates a rule selecting a property of a type.
func PropertyRule(typeName, name string) Rule {
	return Rule{Kind: model.KindProperty, Name: name, Type: typeName}
}

// Key returns the package-local lookup key of the rule.
func (r Rule) Key() (string, error) {
	if r.Name == "" {
		return "", fmt.Errorf("%s rule has no name", r.Kind)
	}

	switch r.Kind {
	case model.KindType:
		return r.Name, nil
	case model.KindElement:
		q, err := model.ParseQName(r.Name)
		if err != nil {
			return "", err
		}

		return q.String(), nil
	case model.KindProperty:
		if r.Type == "" {
			return "", fmt.Errorf("property rule %q has no type", r.Name)
		}

		return model.PropertyKey(r.Type, r.Name), nil
	default:
		return "", fmt.Errorf("invalid rule kind %d", r.Kind)
	}
}

// Resolve finds the node selected by the rule among the nodes owned by pkg.
// It returns nil when the rule is malformed or nothing matches.
func (r Rule) Resolve(p model.Provider, pkg string) *model.Node {
	key, err := r.Key()
	if err != nil {
		return nil
	}

	return p.Lookup(r.Kind, pkg, key)
}

// String returns a human-readable representation of the rule.
func (r Rule) String() string {
	if r.Kind == model.KindProperty {
		return fmt.Sprintf("property %s.%s", r.Type, r.Name)
	}

	return fmt.Sprintf("%s %s", r.Kind, r.Name)
}

// DependencyRef names another mapping whose dependencies are to be included.
type DependencyRef struct {
	ID string
}

// RuleSet is an ordered collection of rules and dependency references.
type RuleSet struct {
	Rules        []Rule
	Dependencies []DependencyRef
}

// Add appends rules to the set.
func (s *RuleSet) Add(rules ...Rule) *RuleSet {
	s.Rules = append(s.Rules, rules...)
	return s
}

// DependOn appends dependency references for the given mapping ids.
func (s *RuleSet) DependOn(ids ...string) *RuleSet {
	for _, id := range ids {
		s.Dependencies = append(s.Dependencies, DependencyRef{ID: id})
	}

	return s
}

// OfKind returns the rules of one kind in declaration order.
func (s *RuleSet) OfKind(kind model.NodeKind) []Rule {
	if s == nil {
		return nil
	}

	var out []Rule
	for _, r := range s.Rules {
		if r.Kind == kind {
			out = append(out, r)
		}
	}

	return out
}

// Ordered returns all rules grouped by kind (types, elements, properties),
// keeping declaration order within each group.
func (s *RuleSet) Ordered() []Rule {
	if s == nil {
		return nil
	}

	out := make([]Rule, 0, len(s.Rules))
	for _, kind := range model.Kinds {
		out = append(out, s.OfKind(kind)...)
	}

	return out
}

// Resolution is the outcome of resolving one rule.
type Resolution struct {
	Rule Rule
	Node *model.Node // nil when the rule did not resolve
}

// Resolve resolves every rule of the set against pkg, in Ordered order.
func (s *RuleSet) Resolve(p model.Provider, pkg string) []Resolution {
	ordered := s.Ordered()

	out := make([]Resolution, 0, len(ordered))
	for _, r := range ordered {
		out = append(out, Resolution{Rule: r, Node: r.Resolve(p, pkg)})
	}

	return out
}

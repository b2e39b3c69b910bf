// Package report renders built mapping units as YAML for downstream stages.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"modelmap/internal/mapping"
	"modelmap/internal/model"
	"modelmap/internal/nsusage"
)

// Report is the root of the mapping report.
type Report struct {
	Mappings []Unit `yaml:"mappings"`
}

// Unit describes one built mapping.
type Unit struct {
	ID                 string    `yaml:"id,omitempty"`
	Name               string    `yaml:"name"`
	Package            string    `yaml:"package"`
	ElementNamespace   Namespace `yaml:"default_element_namespace"`
	AttributeNamespace Namespace `yaml:"default_attribute_namespace"`
	WholePackage       bool      `yaml:"whole_package,omitempty"`
	Types              []string  `yaml:"types,omitempty"`
	Elements           []string  `yaml:"elements,omitempty"`
	Properties         []string  `yaml:"properties,omitempty"`
	Excluded           []string  `yaml:"excluded,omitempty"`
	// Dependencies are nodes the mapping needs but does not contain.
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// Namespace is a resolved default namespace and where it came from.
type Namespace struct {
	URI    string `yaml:"uri"`
	Source string `yaml:"source"`
}

// Build creates a report for the given units, in order.
func Build(units []*mapping.Unit) *Report {
	r := &Report{Mappings: make([]Unit, 0, len(units))}

	for _, u := range units {
		r.Mappings = append(r.Mappings, Unit{
			ID:                 u.ID,
			Name:               u.Name,
			Package:            u.Package,
			ElementNamespace:   namespace(u.ElementNamespace),
			AttributeNamespace: namespace(u.AttributeNamespace),
			WholePackage:       u.IncludesWholePackage(),
			Types:              localKeys(u.Types()),
			Elements:           localKeys(u.Elements()),
			Properties:         localKeys(u.Properties()),
			Excluded:           localKeys(u.Excluded()),
			Dependencies:       qualifiedKeys(u.Dependencies()),
		})
	}

	return r
}

// PackageNamespaces is the namespace usage of one package.
type PackageNamespaces struct {
	Package           string            `yaml:"package"`
	MostUsedElement   string            `yaml:"most_used_element_namespace"`
	MostUsedAttribute string            `yaml:"most_used_attribute_namespace"`
	Elements          nsusage.Histogram `yaml:"elements,omitempty"`
	Attributes        nsusage.Histogram `yaml:"attributes,omitempty"`
}

// Namespaces tallies namespace usage for every package of the graph.
func Namespaces(p model.Provider) []PackageNamespaces {
	var out []PackageNamespaces

	for _, pkg := range p.Packages() {
		el := nsusage.Tally(pkg, model.CategoryElement)
		attr := nsusage.Tally(pkg, model.CategoryAttribute)

		out = append(out, PackageNamespaces{
			Package:           pkg.Name,
			MostUsedElement:   el.MostUsed(),
			MostUsedAttribute: attr.MostUsed(),
			Elements:          el,
			Attributes:        attr,
		})
	}

	return out
}

// Write encodes v as YAML with two-space indentation.
func Write(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return enc.Close()
}

func namespace(d mapping.NamespaceDefault) Namespace {
	return Namespace{URI: d.URI, Source: d.Source.String()}
}

func localKeys(nodes []*model.Node) []string {
	if len(nodes) == 0 {
		return nil
	}

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID.Key)
	}

	return out
}

func qualifiedKeys(nodes []*model.Node) []string {
	if len(nodes) == 0 {
		return nil
	}

	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID.String())
	}

	return out
}

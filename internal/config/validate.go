package config

import (
	"fmt"

	"modelmap/internal/diagnostic"
	"modelmap/internal/match"
	"modelmap/internal/model"
)

// Validate checks a configuration against the given model graph.
//
// Errors are configuration mistakes that would make the build fail or
// misbehave: missing name or package, unknown package, duplicate ids,
// dependencies_of naming a mapping that is not declared earlier, and
// malformed rules. Rules that are well formed but select nothing are
// warnings: the build drops them.
func Validate(mf *ModulesFile, graph model.Provider) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if graph == nil {
		res.AddError("graph_is_nil", "model graph is nil", "", "")
		return res
	}

	declared := map[string]int{}

	for i := range mf.Mappings {
		if id := mf.Mappings[i].ID; id != "" {
			if _, ok := declared[id]; !ok {
				declared[id] = i
			}
		}
	}

	seen := map[string]struct{}{}

	for i := range mf.Mappings {
		m := &mf.Mappings[i]
		label := m.String()

		if m.Name == "" {
			res.AddError("missing_name", fmt.Sprintf("mapping #%d has no name", i+1), label, "")
		}

		if m.ID != "" {
			if _, dup := seen[m.ID]; dup {
				res.AddError("duplicate_id", fmt.Sprintf("duplicate mapping id %q", m.ID), label, m.ID)
			}

			seen[m.ID] = struct{}{}
		}

		if m.Package == "" {
			res.AddError("missing_package", "mapping has no package", label, "")
			continue
		}

		if graph.Package(m.Package) == nil {
			res.AddError("package_not_found", fmt.Sprintf("package %q not found in the model", m.Package), label, m.Package)
			continue
		}

		validateRules(res, graph, m, m.Excludes, "excludes")
		validateRules(res, graph, m, m.Includes, "includes")

		if m.Excludes != nil && !m.Excludes.DependenciesOf.IsEmpty() {
			res.AddWarning("ignored_dependencies", "dependencies_of has no effect under excludes", label, m.Excludes.DependenciesOf.First())
		}

		if m.Includes == nil {
			continue
		}

		for _, id := range m.Includes.DependenciesOf {
			at, ok := declared[id]

			switch {
			case !ok:
				res.AddError("unknown_dependency", fmt.Sprintf("no mapping with id %q", id), label, id)
			case at >= i:
				res.AddError("forward_dependency", fmt.Sprintf("mapping %q must be declared before it is referenced", id), label, id)
			}
		}
	}

	return res
}

func validateRules(res *diagnostic.Diagnostics, graph model.Provider, m *MappingConfig, section *RulesConfig, where string) {
	label := m.String()

	for _, r := range section.RuleSet().Ordered() {
		key, err := r.Key()
		if err != nil {
			res.AddError("invalid_rule", fmt.Sprintf("%s: %v", where, err), label, r.String())
			continue
		}

		if r.Resolve(graph, m.Package) != nil {
			continue
		}

		msg := fmt.Sprintf("%s: %s not found in package %q", where, r, m.Package)
		if hint, ok := match.Suggest(key, keysOf(graph.Package(m.Package).NodesOf(r.Kind))); ok {
			msg += fmt.Sprintf("; did you mean %q?", hint)
		}

		res.AddWarning("rule_unresolved", msg, label, r.String())
	}
}

func keysOf(nodes []*model.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID.Key)
	}

	return out
}

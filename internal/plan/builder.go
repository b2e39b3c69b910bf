package plan

import (
	"fmt"

	"modelmap/internal/common"
	"modelmap/internal/config"
	"modelmap/internal/diagnostic"
	"modelmap/internal/mapping"
	"modelmap/internal/model"
)

// Result holds the units of one build run.
type Result struct {
	// Units in build order: configured mappings first, then default
	// mappings for unconfigured packages.
	Units []*mapping.Unit
	// Registry holds the units that have an id.
	Registry *mapping.Registry
}

// Unit returns the first unit with the given name, or nil.
func (r *Result) Unit(name string) *mapping.Unit {
	for _, u := range r.Units {
		if u.Name == name {
			return u
		}
	}

	return nil
}

// Builder builds every mapping of a configuration against one model graph.
// Each call to Build uses a fresh registry, so builds never share state.
type Builder struct {
	provider model.Provider
	observer diagnostic.Observer
}

// NewBuilder creates a Builder. A nil observer discards events.
func NewBuilder(provider model.Provider, obs diagnostic.Observer) *Builder {
	return &Builder{
		provider: provider,
		observer: diagnostic.OrDiscard(obs),
	}
}

// Build builds the mappings of mf in declaration order. A mapping may only
// depend on mappings declared before it. The first error aborts the build
// and no partial result is returned.
func (b *Builder) Build(mf *config.ModulesFile) (*Result, error) {
	if mf == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidMapping)
	}

	res := &Result{Registry: mapping.NewRegistry()}
	mapped := map[string]struct{}{}

	for i := range mf.Mappings {
		mc := &mf.Mappings[i]

		unit, err := b.add(res, FromConfig(mc))
		if err != nil {
			return nil, err
		}

		mapped[unit.Package] = struct{}{}
	}

	if !mf.MapUnconfiguredPackages {
		return res, nil
	}

	for _, pkg := range b.provider.Packages() {
		if _, ok := mapped[pkg.Name]; ok {
			continue
		}

		b.observer.Observe(diagnostic.Diagnostic{
			Severity: diagnostic.SeverityInfo,
			Code:     "default_mapping",
			Message:  fmt.Sprintf("Package [%s] has no mapping, mapping it as a whole.", pkg.Name),
			Package:  pkg.Name,
		})

		if _, err := b.add(res, Request{Name: common.MappingName(pkg.Name), Package: pkg.Name}); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (b *Builder) add(res *Result, req Request) (*mapping.Unit, error) {
	unit, err := BuildMapping(b.provider, req, res.Registry, b.observer)
	if err != nil {
		return nil, err
	}

	if unit.ID != "" {
		if err := res.Registry.Put(unit.ID, unit); err != nil {
			return nil, fmt.Errorf("mapping [%s]: %w", unit.Name, err)
		}
	}

	res.Units = append(res.Units, unit)

	b.observer.Observe(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityInfo,
		Code:     "mapping_built",
		Message: fmt.Sprintf("Mapping [%s] built: %d types, %d elements, %d properties.",
			unit.Name, len(unit.Types()), len(unit.Elements()), len(unit.Properties())),
		Mapping: unit.Name,
		Package: unit.Package,
	})

	return unit, nil
}

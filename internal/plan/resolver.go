package plan

import (
	"errors"
	"fmt"

	"modelmap/internal/config"
	"modelmap/internal/diagnostic"
	"modelmap/internal/mapping"
	"modelmap/internal/model"
	"modelmap/internal/rules"
)

var (
	// ErrPackageNotFound is returned when a mapping names a package that is
	// not in the model graph.
	ErrPackageNotFound = errors.New("package not found")
	// ErrInvalidMapping is returned for a mapping without a name or package.
	ErrInvalidMapping = errors.New("invalid mapping")
)

// Request describes one mapping to build.
type Request struct {
	ID      string
	Name    string
	Package string

	// nil means "infer from the package"
	DefaultElementNamespaceURI   *string
	DefaultAttributeNamespaceURI *string

	// nil Includes means "the whole package"
	Includes *rules.RuleSet
	Excludes *rules.RuleSet
}

// FromConfig converts a mapping configuration into a Request.
func FromConfig(mc *config.MappingConfig) Request {
	return Request{
		ID:                           mc.ID,
		Name:                         mc.Name,
		Package:                      mc.Package,
		DefaultElementNamespaceURI:   mc.DefaultElementNamespaceURI,
		DefaultAttributeNamespaceURI: mc.DefaultAttributeNamespaceURI,
		Includes:                     mc.Includes.RuleSet(),
		Excludes:                     mc.Excludes.RuleSet(),
	}
}

// BuildMapping builds one unit. Dependencies are looked up in registry,
// which may be nil when the request references none. The unit is not
// registered; that is up to the caller.
func BuildMapping(
	provider model.Provider,
	req Request,
	registry *mapping.Registry,
	obs diagnostic.Observer,
) (*mapping.Unit, error) {
	obs = diagnostic.OrDiscard(obs)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: mapping for package %q has no name", ErrInvalidMapping, req.Package)
	}

	if req.Package == "" {
		return nil, fmt.Errorf("%w: mapping [%s] has no package", ErrInvalidMapping, req.Name)
	}

	pkg := provider.Package(req.Package)
	if pkg == nil {
		return nil, fmt.Errorf("mapping [%s]: %w: %q", req.Name, ErrPackageNotFound, req.Package)
	}

	r := &resolver{
		provider: provider,
		req:      req,
		pkg:      pkg,
		obs:      obs,
	}

	r.debug("package_mapped", fmt.Sprintf("Package [%s] will be mapped by the mapping [%s].", req.Package, req.Name), "")

	element, attribute := mapping.ResolveDefaults(req.Name, pkg,
		req.DefaultElementNamespaceURI, req.DefaultAttributeNamespaceURI, obs)

	unit := mapping.NewUnit(provider, pkg, req.ID, req.Name, element, attribute)

	if req.Excludes != nil {
		r.apply(req.Excludes, "excludes", unit.Exclude)
	}

	if req.Includes == nil {
		r.emit(diagnostic.SeverityTrace, "whole_package",
			fmt.Sprintf("Includes configuration for the mapping [%s] is not provided, including the whole package.", req.Name), "")
		unit.IncludePackage()

		return unit, nil
	}

	r.apply(req.Includes, "includes", func(n *model.Node) { unit.Include(n) })

	for _, dep := range req.Includes.Dependencies {
		other, err := lookup(registry, dep.ID)
		if err != nil {
			return nil, fmt.Errorf("mapping [%s]: %w", req.Name, err)
		}

		n := unit.IncludeDependenciesOf(other)
		r.debug("dependencies_included",
			fmt.Sprintf("Mapping [%s] includes %d dependencies of the mapping [%s].", req.Name, n, dep.ID), dep.ID)
	}

	return unit, nil
}

func lookup(registry *mapping.Registry, id string) (*mapping.Unit, error) {
	if registry == nil {
		return nil, &mapping.MissingMappingError{ID: id}
	}

	return registry.Require(id)
}

type resolver struct {
	provider model.Provider
	req      Request
	pkg      *model.Package
	obs      diagnostic.Observer
}

// apply resolves every rule of set and passes resolved nodes to mark.
func (r *resolver) apply(set *rules.RuleSet, where string, mark func(*model.Node)) {
	for _, res := range set.Resolve(r.provider, r.pkg.Name) {
		if res.Node == nil {
			r.debug("rule_unresolved",
				fmt.Sprintf("%s rule %s of the mapping [%s] matches nothing in the package [%s].", where, res.Rule, r.req.Name, r.pkg.Name),
				res.Rule.String())

			continue
		}

		mark(res.Node)
	}
}

func (r *resolver) debug(code, msg, subject string) {
	r.emit(diagnostic.SeverityDebug, code, msg, subject)
}

func (r *resolver) emit(severity diagnostic.Severity, code, msg, subject string) {
	r.obs.Observe(diagnostic.Diagnostic{
		Severity: severity,
		Code:     code,
		Message:  msg,
		Mapping:  r.req.Name,
		Package:  r.pkg.Name,
		Subject:  subject,
	})
}

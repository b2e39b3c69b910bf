package mapping

import (
	"fmt"

	"modelmap/internal/common"
	"modelmap/internal/diagnostic"
	"modelmap/internal/model"
	"modelmap/internal/nsusage"
)

// DefaultSource tells where a default namespace came from.
type DefaultSource int

const (
	SourceInferred DefaultSource = iota // most used namespace of the package
	SourceExplicit                      // configured
)

// String returns a human-readable representation of the source.
func (s DefaultSource) String() string {
	switch s {
	case SourceInferred:
		return "inferred"
	case SourceExplicit:
		return "explicit"
	default:
		return common.UnknownStr
	}
}

// NamespaceDefault is a resolved default namespace URI.
type NamespaceDefault struct {
	URI    string
	Source DefaultSource
}

// ResolveDefaults picks the default element and attribute namespaces of a
// mapping. A non-nil explicit value is used verbatim, including "". A nil
// one is replaced by the most used namespace of the package in that
// category. Each decision is reported as a debug event.
func ResolveDefaults(
	mapping string,
	pkg *model.Package,
	explicitElement, explicitAttribute *string,
	obs diagnostic.Observer,
) (NamespaceDefault, NamespaceDefault) {
	obs = diagnostic.OrDiscard(obs)

	element := resolveDefault(mapping, pkg, explicitElement, model.CategoryElement, obs)
	attribute := resolveDefault(mapping, pkg, explicitAttribute, model.CategoryAttribute, obs)

	return element, attribute
}

func resolveDefault(
	mapping string,
	pkg *model.Package,
	explicit *string,
	category model.NamespaceCategory,
	obs diagnostic.Observer,
) NamespaceDefault {
	pkgName := ""
	if pkg != nil {
		pkgName = pkg.Name
	}

	var (
		d   NamespaceDefault
		msg string
	)

	if explicit != nil {
		d = NamespaceDefault{URI: *explicit, Source: SourceExplicit}
		msg = fmt.Sprintf("Mapping [%s] uses the configured default %s namespace URI %q.", mapping, category, d.URI)
	} else {
		d = NamespaceDefault{URI: nsusage.Tally(pkg, category).MostUsed(), Source: SourceInferred}
		msg = fmt.Sprintf("Mapping [%s] will use %q as it is the most used %s namespace URI in the package [%s].",
			mapping, d.URI, category, pkgName)
	}

	obs.Observe(diagnostic.Diagnostic{
		Severity: diagnostic.SeverityDebug,
		Code:     "default_" + category.String() + "_namespace",
		Message:  msg,
		Mapping:  mapping,
		Package:  pkgName,
		Subject:  d.Source.String(),
	})

	return d
}

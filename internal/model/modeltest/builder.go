// Package modeltest provides a fluent builder for model graphs in tests.
package modeltest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"modelmap/internal/model"
)

// Builder builds a model.Graph, failing the test on any graph error.
type Builder struct {
	t     testing.TB
	graph *model.Graph
}

// New creates a Builder over an empty graph.
func New(t testing.TB) *Builder {
	t.Helper()

	return &Builder{t: t, graph: model.NewGraph()}
}

// Graph returns the built graph.
func (b *Builder) Graph() *model.Graph {
	return b.graph
}

// Package ensures an (optionally empty) package exists.
func (b *Builder) Package(pkg string) *Builder {
	b.graph.AddPackage(pkg)
	return b
}

// Type adds a type whose XML name is in namespace ns.
func (b *Builder) Type(pkg, name, ns string) *Builder {
	b.t.Helper()

	_, err := b.graph.AddType(pkg, name, model.NewQName(ns, name))
	require.NoError(b.t, err)

	return b
}

// Element adds a global element {ns}name of type typeName (in typePkg).
// An empty typeName adds an untyped element.
func (b *Builder) Element(pkg, ns, name, typePkg, typeName string) *Builder {
	b.t.Helper()

	el, err := b.graph.AddElement(pkg, model.NewQName(ns, name))
	require.NoError(b.t, err)

	if typeName != "" {
		b.depend(el.ID, model.NodeID{Kind: model.KindType, Package: typePkg, Key: typeName})
	}

	return b
}

// ElementProperty adds an element property {ns}name to owner, optionally
// typed by a type (valuePkg, valueType).
func (b *Builder) ElementProperty(pkg, owner, name, ns, valuePkg, valueType string) *Builder {
	return b.property(pkg, owner, name, ns, model.CategoryElement, valuePkg, valueType)
}

// AttributeProperty adds an attribute property {ns}name to owner.
func (b *Builder) AttributeProperty(pkg, owner, name, ns string) *Builder {
	return b.property(pkg, owner, name, ns, model.CategoryAttribute, "", "")
}

// ValueProperty adds a character-data property to owner.
func (b *Builder) ValueProperty(pkg, owner, name string) *Builder {
	b.t.Helper()

	_, err := b.graph.AddProperty(pkg, owner, name, model.QName{}, model.CategoryNone)
	require.NoError(b.t, err)

	return b
}

// Depends adds an edge between two types.
func (b *Builder) Depends(fromPkg, from, toPkg, to string) *Builder {
	b.t.Helper()

	b.depend(
		model.NodeID{Kind: model.KindType, Package: fromPkg, Key: from},
		model.NodeID{Kind: model.KindType, Package: toPkg, Key: to},
	)

	return b
}

func (b *Builder) property(pkg, owner, name, ns string, cat model.NamespaceCategory, valuePkg, valueType string) *Builder {
	b.t.Helper()

	p, err := b.graph.AddProperty(pkg, owner, name, model.NewQName(ns, name), cat)
	require.NoError(b.t, err)

	if valueType != "" {
		b.depend(p.ID, model.NodeID{Kind: model.KindType, Package: valuePkg, Key: valueType})
	}

	return b
}

func (b *Builder) depend(from, to model.NodeID) {
	b.t.Helper()
	require.NoError(b.t, b.graph.AddDependency(from, to))
}

// TypeID returns the ID of a type node.
func TypeID(pkg, name string) model.NodeID {
	return model.NodeID{Kind: model.KindType, Package: pkg, Key: name}
}

// ElementID returns the ID of an element node.
func ElementID(pkg, ns, name string) model.NodeID {
	return model.NodeID{Kind: model.KindElement, Package: pkg, Key: model.NewQName(ns, name).String()}
}

// PropertyID returns the ID of a property node.
func PropertyID(pkg, owner, name string) model.NodeID {
	return model.NodeID{Kind: model.KindProperty, Package: pkg, Key: model.PropertyKey(owner, name)}
}

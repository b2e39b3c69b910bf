package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T) *Graph {
	t.Helper()

	g := NewGraph()

	order, err := g.AddType("po", "Order", NewQName("urn:po", "Order"))
	require.NoError(t, err)

	addr, err := g.AddType("po", "Address", NewQName("urn:po", "Address"))
	require.NoError(t, err)

	_, err = g.AddType("po", "Unused", NewQName("urn:po", "Unused"))
	require.NoError(t, err)

	ship, err := g.AddProperty("po", "Order", "shipTo", NewQName("urn:po", "shipTo"), CategoryElement)
	require.NoError(t, err)
	require.NoError(t, g.AddDependency(ship.ID, addr.ID))

	_, err = g.AddProperty("po", "Address", "country", NewQName("", "country"), CategoryAttribute)
	require.NoError(t, err)

	el, err := g.AddElement("po", NewQName("urn:po", "order"))
	require.NoError(t, err)
	require.NoError(t, g.AddDependency(el.ID, order.ID))

	return g
}

func TestGraph_DeclarationOrder(t *testing.T) {
	g := buildGraph(t)

	p := g.Package("po")
	require.NotNil(t, p)

	var keys []string
	for _, n := range p.Nodes() {
		keys = append(keys, n.ID.Key)
	}

	assert.Equal(t, []string{
		"Order", "Address", "Unused",
		"{urn:po}order",
		"Order.shipTo", "Address.country",
	}, keys)
	assert.Len(t, p.NodesOf(KindType), 3)
	assert.Nil(t, p.NodesOf(KindUnknown))
}

func TestGraph_Lookup(t *testing.T) {
	g := buildGraph(t)

	n := g.Lookup(KindProperty, "po", PropertyKey("Order", "shipTo"))
	require.NotNil(t, n)
	assert.Equal(t, "Order", n.Owner)
	assert.Equal(t, "shipTo", n.Property)
	assert.Equal(t, CategoryElement, n.Category)

	assert.Nil(t, g.Lookup(KindType, "other", "Order"))
	assert.Nil(t, g.Lookup(KindElement, "po", "order"))
	assert.NotNil(t, g.Lookup(KindElement, "po", "{urn:po}order"))
}

func TestGraph_DuplicateNode(t *testing.T) {
	g := NewGraph()
	_, err := g.AddType("po", "Order", QName{Local: "Order"})
	require.NoError(t, err)

	_, err = g.AddType("po", "Order", QName{Local: "Order"})
	require.ErrorIs(t, err, ErrDuplicateNode)
}

func TestGraph_PropertyRequiresOwner(t *testing.T) {
	g := NewGraph()
	_, err := g.AddProperty("po", "Missing", "p", QName{Local: "p"}, CategoryElement)
	require.ErrorIs(t, err, ErrUnknownNode)
}

func TestGraph_AddDependencyUnknown(t *testing.T) {
	g := buildGraph(t)
	err := g.AddDependency(NodeID{Kind: KindType, Package: "po", Key: "Order"}, NodeID{Kind: KindType, Package: "x", Key: "Y"})
	require.ErrorIs(t, err, ErrUnknownNode)
}

func TestClosure(t *testing.T) {
	g := buildGraph(t)

	el := g.Lookup(KindElement, "po", "{urn:po}order")
	closure := Closure(g, el)

	var keys []string
	for _, n := range closure {
		keys = append(keys, n.ID.Key)
	}

	assert.Equal(t, []string{
		"{urn:po}order", "Order", "Order.shipTo", "Address", "Address.country",
	}, keys)
}

func TestClosure_CycleAndNilRoots(t *testing.T) {
	g := NewGraph()
	a, err := g.AddType("p", "A", QName{Local: "A"})
	require.NoError(t, err)
	b, err := g.AddType("p", "B", QName{Local: "B"})
	require.NoError(t, err)
	require.NoError(t, g.AddDependency(a.ID, b.ID))
	require.NoError(t, g.AddDependency(b.ID, a.ID))
	require.NoError(t, g.AddDependency(b.ID, a.ID))

	closure := Closure(g, nil, a, a)
	assert.Len(t, closure, 2)
	assert.Len(t, g.DependenciesOf(b.ID), 1)
}

func TestGraph_Packages(t *testing.T) {
	g := NewGraph()
	g.AddPackage("b")
	g.AddPackage("a")
	g.AddPackage("b")

	var names []string
	for _, p := range g.Packages() {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"b", "a"}, names)
}

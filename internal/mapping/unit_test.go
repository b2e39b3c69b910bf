package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelmap/internal/model"
	"modelmap/internal/model/modeltest"
)

// fixture:
//
//	po.Order -> po.Order.items -> po.Item -> po.Item.product -> shared.Product
//	po.{urn:po}order -> po.Order
//	po.Unused
func fixture(t *testing.T) *model.Graph {
	t.Helper()

	return modeltest.New(t).
		Type("shared", "Product", "urn:shared").
		AttributeProperty("shared", "Product", "sku", "").
		Type("po", "Order", "urn:po").
		Type("po", "Item", "urn:po").
		Type("po", "Unused", "urn:po").
		ElementProperty("po", "Order", "items", "urn:po", "po", "Item").
		ElementProperty("po", "Item", "product", "urn:po", "shared", "Product").
		Element("po", "urn:po", "order", "po", "Order").
		Graph()
}

func newUnit(g *model.Graph, pkg string) *Unit {
	return NewUnit(g, g.Package(pkg), pkg, pkg, NamespaceDefault{}, NamespaceDefault{})
}

func keys(nodes []*model.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID.Key)
	}

	return out
}

func TestUnit_IncludePackage(t *testing.T) {
	g := fixture(t)
	u := newUnit(g, "po")
	u.IncludePackage()

	assert.True(t, u.IncludesWholePackage())
	assert.Equal(t, keys(g.Package("po").Nodes()), keys(u.Members()))
	assert.Equal(t, []string{"Product", "Product.sku"}, keys(u.Dependencies()))
}

func TestUnit_IncludeIsTransitiveWithinPackage(t *testing.T) {
	g := fixture(t)
	u := newUnit(g, "po")

	require.True(t, u.Include(g.Lookup(model.KindElement, "po", "{urn:po}order")))

	assert.Equal(t, []string{"Order", "Item"}, keys(u.Types()))
	assert.Equal(t, []string{"{urn:po}order"}, keys(u.Elements()))
	assert.Equal(t, []string{"Order.items", "Item.product"}, keys(u.Properties()))
	assert.False(t, u.Contains(modeltest.TypeID("po", "Unused")))

	// Product and its attribute are what the unit needs from elsewhere.
	assert.Equal(t, []string{"Product", "Product.sku"}, keys(u.Dependencies()))
}

func TestUnit_IncludeForeignNodeIsIgnored(t *testing.T) {
	g := fixture(t)
	u := newUnit(g, "po")

	assert.False(t, u.Include(g.Lookup(model.KindType, "shared", "Product")))
	assert.False(t, u.Include(nil))
	assert.Empty(t, u.Members())
}

func TestUnit_ExcludeDominatesRegardlessOfOrder(t *testing.T) {
	g := fixture(t)
	item := g.Lookup(model.KindType, "po", "Item")
	order := g.Lookup(model.KindType, "po", "Order")

	excludeFirst := newUnit(g, "po")
	excludeFirst.Exclude(item)
	excludeFirst.Include(order)
	excludeFirst.Include(item)

	includeFirst := newUnit(g, "po")
	includeFirst.Include(order)
	includeFirst.Include(item)
	includeFirst.Exclude(item)

	for _, u := range []*Unit{excludeFirst, includeFirst} {
		assert.False(t, u.Contains(item.ID))
		assert.True(t, u.IsExcluded(item.ID))
		// Item is not traversed, so Item.product is not pulled in either.
		assert.Equal(t, []string{"Order", "Order.items"}, keys(u.Members()))
		assert.Equal(t, []string{"Item"}, keys(u.Excluded()))
		assert.Equal(t, []string{"Item", "Item.product", "Product", "Product.sku"}, keys(u.Dependencies()))
	}
}

func TestUnit_ExcludeWithWholePackage(t *testing.T) {
	g := fixture(t)
	u := newUnit(g, "po")
	u.Exclude(g.Lookup(model.KindType, "po", "Unused"))
	u.Exclude(nil)
	u.IncludePackage()

	all := keys(g.Package("po").Nodes())
	got := keys(u.Members())

	assert.Len(t, got, len(all)-1)
	assert.NotContains(t, got, "Unused")
}

func TestUnit_IncludeDependenciesOf(t *testing.T) {
	g := fixture(t)

	po := newUnit(g, "po")
	po.Include(g.Lookup(model.KindType, "po", "Order"))

	shared := newUnit(g, "shared")
	assert.Equal(t, 2, shared.IncludeDependenciesOf(po))
	assert.Equal(t, []string{"Product", "Product.sku"}, keys(shared.Members()))
	assert.Empty(t, shared.Dependencies())

	assert.Equal(t, 0, shared.IncludeDependenciesOf(nil))
}

func TestUnit_IncludeDependenciesOfRespectsExclusions(t *testing.T) {
	g := fixture(t)

	po := newUnit(g, "po")
	po.IncludePackage()

	shared := newUnit(g, "shared")
	shared.Exclude(g.Lookup(model.KindProperty, "shared", "Product.sku"))
	shared.IncludeDependenciesOf(po)

	assert.Equal(t, []string{"Product"}, keys(shared.Members()))
}

func TestUnit_MembersIsACopy(t *testing.T) {
	g := fixture(t)
	u := newUnit(g, "po")
	u.IncludePackage()

	m := u.Members()
	m[0] = nil

	assert.NotNil(t, u.Members()[0])
}

func TestUnit_DefaultAccessors(t *testing.T) {
	u := NewUnit(nil, nil, "", "x",
		NamespaceDefault{URI: "urn:e", Source: SourceExplicit},
		NamespaceDefault{URI: "", Source: SourceInferred})

	assert.Equal(t, "urn:e", u.DefaultElementNamespaceURI())
	assert.Equal(t, "", u.DefaultAttributeNamespaceURI())
	assert.Empty(t, u.Members())
	assert.Nil(t, u.Dependencies())
}

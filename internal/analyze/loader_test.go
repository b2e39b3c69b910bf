package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelmap/internal/diagnostic"
	"modelmap/internal/model"
	"modelmap/internal/nsusage"
)

const (
	purchasePkg  = "modelmap/examples/purchase"
	sharedPkg    = "modelmap/examples/shared"
	revisionsPkg = "modelmap/examples/revisions"
)

func load(t *testing.T) *model.Graph {
	t.Helper()

	graph, err := NewAnalyzer(nil).LoadPackages(purchasePkg, sharedPkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func keys(nodes []*model.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID.Key)
	}

	return out
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := load(t)

	require.NotNil(t, graph.Package(purchasePkg))
	require.NotNil(t, graph.Package(sharedPkg))

	po := graph.Package(purchasePkg)
	assert.Equal(t, []string{"PurchaseOrder", "Items", "Item", "Comment", "Audit"}, keys(po.Types))
	assert.Equal(t, []string{"{urn:example:po}purchaseOrder", "{urn:example:po}comment"}, keys(po.Elements))

	shared := graph.Package(sharedPkg)
	assert.Equal(t, []string{"SKU", "USAddress", "Note"}, keys(shared.Types))
	assert.Empty(t, shared.Elements)
}

func TestAnalyzer_Properties(t *testing.T) {
	graph := load(t)

	orderDate := graph.Lookup(model.KindProperty, purchasePkg, "PurchaseOrder.OrderDate")
	require.NotNil(t, orderDate)
	assert.Equal(t, model.CategoryAttribute, orderDate.Category)
	assert.Equal(t, model.NewQName("", "orderDate"), orderDate.Name)

	shipTo := graph.Lookup(model.KindProperty, purchasePkg, "PurchaseOrder.ShipTo")
	require.NotNil(t, shipTo)
	assert.Equal(t, model.CategoryElement, shipTo.Category)
	assert.Equal(t, model.NewQName("urn:example:po", "shipTo"), shipTo.Name)

	text := graph.Lookup(model.KindProperty, purchasePkg, "Comment.Text")
	require.NotNil(t, text)
	assert.Equal(t, model.CategoryNone, text.Category)

	// skipped, unexported and XMLName fields are not properties
	assert.Nil(t, graph.Lookup(model.KindProperty, purchasePkg, "Audit.Checked"))
	assert.Nil(t, graph.Lookup(model.KindProperty, purchasePkg, "Audit.note"))
	assert.Nil(t, graph.Lookup(model.KindProperty, purchasePkg, "Comment.XMLName"))
	assert.NotNil(t, graph.Lookup(model.KindProperty, purchasePkg, "Audit.Stamp"))
}

func TestAnalyzer_CrossPackageDependencies(t *testing.T) {
	graph := load(t)

	deps := func(kind model.NodeKind, pkg, key string) []string {
		n := graph.Lookup(kind, pkg, key)
		require.NotNil(t, n, key)

		return keys(graph.DependenciesOf(n.ID))
	}

	assert.Equal(t, []string{"PurchaseOrder"}, deps(model.KindElement, purchasePkg, "{urn:example:po}purchaseOrder"))
	assert.Equal(t, []string{"USAddress"}, deps(model.KindProperty, purchasePkg, "PurchaseOrder.ShipTo"))
	assert.Equal(t, []string{"USAddress"}, deps(model.KindProperty, purchasePkg, "PurchaseOrder.BillTo"))
	assert.Equal(t, []string{"Item"}, deps(model.KindProperty, purchasePkg, "Items.Item"))
	assert.Equal(t, []string{"SKU"}, deps(model.KindProperty, purchasePkg, "Item.PartNum"))
	assert.Empty(t, deps(model.KindProperty, purchasePkg, "Item.Quantity"))

	shipTo := graph.Lookup(model.KindProperty, purchasePkg, "PurchaseOrder.ShipTo")
	assert.Equal(t, sharedPkg, graph.DependenciesOf(shipTo.ID)[0].Package())
}

func TestAnalyzer_NamespaceUsage(t *testing.T) {
	graph := load(t)

	po := graph.Package(purchasePkg)
	assert.Equal(t, "urn:example:po", nsusage.MostUsedElementNamespaceURI(po))
	assert.Equal(t, "", nsusage.MostUsedAttributeNamespaceURI(po))

	shared := graph.Package(sharedPkg)
	assert.Equal(t, "urn:example:shared", nsusage.MostUsedElementNamespaceURI(shared))
	// "" (country) and the xml namespace (lang) tie; country comes first
	assert.Equal(t, "", nsusage.MostUsedAttributeNamespaceURI(shared))
}

func TestAnalyzer_UnloadedTargetsAreDropped(t *testing.T) {
	graph, err := NewAnalyzer(nil).LoadPackages(purchasePkg)
	require.NoError(t, err)

	assert.Nil(t, graph.Package(sharedPkg))

	shipTo := graph.Lookup(model.KindProperty, purchasePkg, "PurchaseOrder.ShipTo")
	require.NotNil(t, shipTo)
	assert.Empty(t, graph.DependenciesOf(shipTo.ID))
}

func TestAnalyzer_LoadError(t *testing.T) {
	_, err := NewAnalyzer(nil).LoadPackages("modelmap/examples/does-not-exist")
	require.Error(t, err)
}

func TestAnalyzer_DuplicateElementKeepsFirst(t *testing.T) {
	var diags diagnostic.Diagnostics

	graph, err := NewAnalyzer(&diags).LoadPackages(revisionsPkg)
	require.NoError(t, err)

	pkg := graph.Package(revisionsPkg)
	require.NotNil(t, pkg)
	assert.Equal(t, []string{"OrderV1", "OrderV2"}, keys(pkg.Types))
	assert.Equal(t, []string{"{urn:example:po}purchaseOrder"}, keys(pkg.Elements))

	el := pkg.Elements[0]
	assert.Equal(t, []string{"OrderV1"}, keys(graph.DependenciesOf(el.ID)))

	// the second type keeps its properties
	assert.NotNil(t, graph.Lookup(model.KindProperty, revisionsPkg, "OrderV2.Currency"))

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "duplicate_element", diags.Warnings[0].Code)
	assert.Equal(t, "{urn:example:po}purchaseOrder", diags.Warnings[0].Subject)
	assert.Contains(t, diags.Warnings[0].Message, "OrderV1")
}

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelmap/internal/config"
	"modelmap/internal/diagnostic"
	"modelmap/internal/mapping"
	"modelmap/internal/model/modeltest"
)

func parse(t *testing.T, yaml string) *config.ModulesFile {
	t.Helper()

	mf, err := config.Parse([]byte(yaml))
	require.NoError(t, err)

	return mf
}

func TestBuilder_Build(t *testing.T) {
	g := poGraph(t)

	mf := parse(t, `
mappings:
  - id: A
    name: A
    package: a
    includes:
      types: A1
  - name: B
    package: b
    includes:
      dependencies_of: A
`)

	var diags diagnostic.Diagnostics

	res, err := NewBuilder(g, &diags).Build(mf)
	require.NoError(t, err)
	require.Len(t, res.Units, 2)

	assert.Equal(t, []string{"A"}, res.Registry.IDs())
	assert.Equal(t, "A", res.Units[0].Name)

	b := res.Unit("B")
	require.NotNil(t, b)
	assert.True(t, b.Contains(modeltest.TypeID("b", "B2")))
	assert.Nil(t, res.Unit("C"))

	assert.Len(t, diags.Infos, 2)
}

func TestBuilder_ForwardReferenceFails(t *testing.T) {
	g := poGraph(t)

	mf := parse(t, `
mappings:
  - name: B
    package: b
    includes:
      dependencies_of: A
  - id: A
    name: A
    package: a
`)

	res, err := NewBuilder(g, nil).Build(mf)
	require.ErrorIs(t, err, mapping.ErrMissingMapping)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), `missing mapping with id "A"`)
}

func TestBuilder_DuplicateID(t *testing.T) {
	g := poGraph(t)

	mf := parse(t, `
mappings:
  - id: A
    package: a
  - id: A
    package: b
`)

	_, err := NewBuilder(g, nil).Build(mf)
	require.ErrorIs(t, err, mapping.ErrDuplicateMapping)
}

func TestBuilder_MapUnconfiguredPackages(t *testing.T) {
	g := poGraph(t)

	mf := parse(t, `
map_unconfigured_packages: true
mappings:
  - id: A
    package: a
`)

	var diags diagnostic.Diagnostics

	res, err := NewBuilder(g, &diags).Build(mf)
	require.NoError(t, err)

	var names []string
	for _, u := range res.Units {
		names = append(names, u.Name)
	}

	assert.Equal(t, []string{"a", "b", "com_example"}, names)
	assert.Equal(t, 1, res.Registry.Len())
	assert.True(t, res.Unit("com_example").IncludesWholePackage())
	assert.Contains(t, diags.Codes(), "default_mapping")
}

func TestBuilder_BareIncludesSelectsNothing(t *testing.T) {
	g := poGraph(t)

	mf := parse(t, "mappings:\n  - package: a\n    name: x\n    includes:\n")

	res, err := NewBuilder(g, nil).Build(mf)
	require.NoError(t, err)

	x := res.Unit("x")
	require.NotNil(t, x)
	assert.False(t, x.IncludesWholePackage())
	assert.Empty(t, x.Members())
	assert.Empty(t, x.Dependencies())
}

func TestBuilder_Nil(t *testing.T) {
	_, err := NewBuilder(poGraph(t), nil).Build(nil)
	require.ErrorIs(t, err, ErrInvalidMapping)
}

func TestBuilder_PackageNotFound(t *testing.T) {
	mf := parse(t, "mappings:\n  - package: nope\n")

	_, err := NewBuilder(poGraph(t), nil).Build(mf)
	require.ErrorIs(t, err, ErrPackageNotFound)
}

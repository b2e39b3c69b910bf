package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelmap/internal/diagnostic"
	"modelmap/internal/model/modeltest"
)

func TestResolveDefaults_Inferred(t *testing.T) {
	g := modeltest.New(t).
		Element("com.example", "ns1", "a", "", "").
		Element("com.example", "ns2", "b", "", "").
		Element("com.example", "ns1", "c", "", "").
		Graph()

	var diags diagnostic.Diagnostics

	el, attr := ResolveDefaults("example", g.Package("com.example"), nil, nil, &diags)

	assert.Equal(t, NamespaceDefault{URI: "ns1", Source: SourceInferred}, el)
	assert.Equal(t, NamespaceDefault{URI: "", Source: SourceInferred}, attr)

	require.Len(t, diags.Debugs, 2)
	assert.Equal(t, "default_element_namespace", diags.Debugs[0].Code)
	assert.Equal(t, "inferred", diags.Debugs[0].Subject)
	assert.Contains(t, diags.Debugs[0].Message, `"ns1"`)
	assert.Equal(t, "default_attribute_namespace", diags.Debugs[1].Code)
}

func TestResolveDefaults_ExplicitEmptyIsNotInferred(t *testing.T) {
	g := modeltest.New(t).
		Type("p", "T", "").
		AttributeProperty("p", "T", "a", "urn:attr").
		Element("p", "urn:el", "e", "", "").
		Graph()

	empty := ""
	custom := "urn:custom"

	el, attr := ResolveDefaults("p", g.Package("p"), &custom, &empty, nil)

	assert.Equal(t, NamespaceDefault{URI: "urn:custom", Source: SourceExplicit}, el)
	assert.Equal(t, NamespaceDefault{URI: "", Source: SourceExplicit}, attr)
}

func TestDefaultSource_String(t *testing.T) {
	assert.Equal(t, "explicit", SourceExplicit.String())
	assert.Equal(t, "inferred", SourceInferred.String())
	assert.Equal(t, "unknown", DefaultSource(9).String())
}

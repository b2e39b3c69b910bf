package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateNode is returned when a node with the same ID is added twice.
	ErrDuplicateNode = errors.New("duplicate node")
	// ErrUnknownNode is returned when an edge references a node not in the graph.
	ErrUnknownNode = errors.New("unknown node")
)

// NodeID uniquely identifies a node in a graph.
//
// Key is the package-local lookup key:
//   - types: the local type name ("PurchaseOrderType")
//   - elements: the element QName in Clark notation ("{urn:po}purchaseOrder")
//   - properties: "<type>.<property>" ("PurchaseOrderType.shipTo")
type NodeID struct {
	Kind    NodeKind
	Package string
	Key     string
}

// String returns a human-readable representation of the NodeID.
func (id NodeID) String() string {
	return id.Kind.String() + ":" + id.Package + "#" + id.Key
}

// PropertyKey builds the lookup key of a property.
func PropertyKey(typeName, propertyName string) string {
	return typeName + "." + propertyName
}

// Node is a type, element or property in the model graph.
type Node struct {
	ID       NodeID
	Name     QName             // XML name (type name, element name, or the property's element/attribute name)
	Category NamespaceCategory // which namespace histogram Name is counted in
	Owner    string            // owning type local name (properties only)
	Property string            // property local name (properties only)
}

// Kind returns the node kind.
func (n *Node) Kind() NodeKind {
	return n.ID.Kind
}

// Package returns the name of the package owning the node.
func (n *Node) Package() string {
	return n.ID.Package
}

// String returns a human-readable representation of the node.
func (n *Node) String() string {
	return n.ID.String()
}

// Package is a set of nodes owned by one package, in declaration order.
type Package struct {
	Name       string
	Types      []*Node
	Elements   []*Node
	Properties []*Node
}

// Nodes returns every node owned by the package: types, then elements, then
// properties, each group in declaration order.
func (p *Package) Nodes() []*Node {
	out := make([]*Node, 0, len(p.Types)+len(p.Elements)+len(p.Properties))
	out = append(out, p.Types...)
	out = append(out, p.Elements...)
	out = append(out, p.Properties...)

	return out
}

// NodesOf returns the owned nodes of the given kind.
func (p *Package) NodesOf(kind NodeKind) []*Node {
	switch kind {
	case KindType:
		return p.Types
	case KindElement:
		return p.Elements
	case KindProperty:
		return p.Properties
	default:
		return nil
	}
}

// Provider is the read-only view of a model graph needed to resolve mappings.
type Provider interface {
	// Packages returns every package in a stable order.
	Packages() []*Package
	// Package returns the package with the given name, or nil.
	Package(name string) *Package
	// Lookup resolves a package-local key to a node of the given kind, or nil.
	Lookup(kind NodeKind, pkg, key string) *Node
	// DependenciesOf returns the direct dependencies of a node.
	DependenciesOf(id NodeID) []*Node
}

// Graph is the in-memory model graph.
type Graph struct {
	packages map[string]*Package
	order    []string
	nodes    map[NodeID]*Node
	deps     map[NodeID][]NodeID
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		packages: make(map[string]*Package),
		nodes:    make(map[NodeID]*Node),
		deps:     make(map[NodeID][]NodeID),
	}
}

// AddPackage returns the package with the given name, creating it if needed.
func (g *Graph) AddPackage(name string) *Package {
	if p, ok := g.packages[name]; ok {
		return p
	}

	p := &Package{Name: name}
	g.packages[name] = p
	g.order = append(g.order, name)

	return p
}

// AddType adds a type node to a package.
func (g *Graph) AddType(pkg, local string, name QName) (*Node, error) {
	return g.add(&Node{
		ID:   NodeID{Kind: KindType, Package: pkg, Key: local},
		Name: name,
	})
}

// AddElement adds a global element declaration to a package. The element
// name is counted in the element namespace histogram.
func (g *Graph) AddElement(pkg string, name QName) (*Node, error) {
	return g.add(&Node{
		ID:       NodeID{Kind: KindElement, Package: pkg, Key: name.String()},
		Name:     name,
		Category: CategoryElement,
	})
}

// AddProperty adds a property of typeName to a package. The owner type must
// already exist; it gets a dependency edge to the new property.
func (g *Graph) AddProperty(pkg, typeName, property string, name QName, category NamespaceCategory) (*Node, error) {
	owner := g.Lookup(KindType, pkg, typeName)
	if owner == nil {
		return nil, fmt.Errorf("%w: type %q in package %q", ErrUnknownNode, typeName, pkg)
	}

	n, err := g.add(&Node{
		ID:       NodeID{Kind: KindProperty, Package: pkg, Key: PropertyKey(typeName, property)},
		Name:     name,
		Category: category,
		Owner:    typeName,
		Property: property,
	})
	if err != nil {
		return nil, err
	}

	g.deps[owner.ID] = append(g.deps[owner.ID], n.ID)

	return n, nil
}

func (g *Graph) add(n *Node) (*Node, error) {
	if _, ok := g.nodes[n.ID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
	}

	p := g.AddPackage(n.ID.Package)

	switch n.ID.Kind {
	case KindType:
		p.Types = append(p.Types, n)
	case KindElement:
		p.Elements = append(p.Elements, n)
	case KindProperty:
		p.Properties = append(p.Properties, n)
	default:
		return nil, fmt.Errorf("invalid node kind %d", n.ID.Kind)
	}

	g.nodes[n.ID] = n

	return n, nil
}

// AddDependency records that from depends on to. Duplicate edges are ignored.
func (g *Graph) AddDependency(from, to NodeID) error {
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, from)
	}

	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNode, to)
	}

	for _, existing := range g.deps[from] {
		if existing == to {
			return nil
		}
	}

	g.deps[from] = append(g.deps[from], to)

	return nil
}

// Package returns the package with the given name, or nil.
func (g *Graph) Package(name string) *Package {
	return g.packages[name]
}

// Packages returns all packages in the order they were added.
func (g *Graph) Packages() []*Package {
	out := make([]*Package, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.packages[name])
	}

	return out
}

// Node returns the node with the given ID, or nil.
func (g *Graph) Node(id NodeID) *Node {
	return g.nodes[id]
}

// Lookup resolves a package-local key to a node, or nil if not found.
func (g *Graph) Lookup(kind NodeKind, pkg, key string) *Node {
	return g.nodes[NodeID{Kind: kind, Package: pkg, Key: key}]
}

// DependenciesOf returns the direct dependencies of a node in insertion order.
func (g *Graph) DependenciesOf(id NodeID) []*Node {
	ids := g.deps[id]
	if len(ids) == 0 {
		return nil
	}

	out := make([]*Node, 0, len(ids))
	for _, d := range ids {
		out = append(out, g.nodes[d])
	}

	return out
}

// Closure returns the roots and everything they transitively depend on, in
// breadth-first order starting from the roots. Each node appears once.
func Closure(p Provider, roots ...*Node) []*Node {
	seen := make(map[NodeID]struct{}, len(roots))
	queue := make([]*Node, 0, len(roots))

	for _, r := range roots {
		if r == nil {
			continue
		}

		if _, ok := seen[r.ID]; ok {
			continue
		}

		seen[r.ID] = struct{}{}
		queue = append(queue, r)
	}

	for i := 0; i < len(queue); i++ {
		for _, d := range p.DependenciesOf(queue[i].ID) {
			if _, ok := seen[d.ID]; ok {
				continue
			}

			seen[d.ID] = struct{}{}
			queue = append(queue, d)
		}
	}

	return queue
}

var _ Provider = (*Graph)(nil)

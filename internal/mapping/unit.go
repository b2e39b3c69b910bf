package mapping

import (
	"modelmap/internal/model"
)

// Unit is a named partition of one model package.
//
// A Unit is built once by the resolver and treated as read-only afterwards.
// It is not safe for concurrent mutation.
type Unit struct {
	ID      string // optional, used only for dependencies_of references
	Name    string
	Package string

	ElementNamespace   NamespaceDefault
	AttributeNamespace NamespaceDefault

	provider model.Provider
	pkg      *model.Package

	wholePackage bool
	roots        []*model.Node
	rootSet      map[model.NodeID]struct{}
	excluded     map[model.NodeID]struct{}

	members   []*model.Node
	memberSet map[model.NodeID]struct{}
	dirty     bool
}

// NewUnit creates an empty unit over pkg. The provider supplies dependency
// edges for membership and dependency computation.
func NewUnit(provider model.Provider, pkg *model.Package, id, name string, element, attribute NamespaceDefault) *Unit {
	if pkg == nil {
		pkg = &model.Package{}
	}

	return &Unit{
		ID:                 id,
		Name:               name,
		Package:            pkg.Name,
		ElementNamespace:   element,
		AttributeNamespace: attribute,
		provider:           provider,
		pkg:                pkg,
		rootSet:            make(map[model.NodeID]struct{}),
		excluded:           make(map[model.NodeID]struct{}),
		dirty:              true,
	}
}

// DefaultElementNamespaceURI returns the resolved default element namespace.
func (u *Unit) DefaultElementNamespaceURI() string {
	return u.ElementNamespace.URI
}

// DefaultAttributeNamespaceURI returns the resolved default attribute namespace.
func (u *Unit) DefaultAttributeNamespaceURI() string {
	return u.AttributeNamespace.URI
}

// Exclude marks n as excluded. Excluded nodes are never members and are
// not traversed when following dependencies.
func (u *Unit) Exclude(n *model.Node) {
	if n == nil {
		return
	}

	u.excluded[n.ID] = struct{}{}
	u.dirty = true
}

// Include marks n as included, together with everything of the unit's
// package it transitively depends on. Nodes of other packages are ignored;
// it returns false for them.
func (u *Unit) Include(n *model.Node) bool {
	if n == nil || n.Package() != u.Package {
		return false
	}

	if _, ok := u.rootSet[n.ID]; !ok {
		u.rootSet[n.ID] = struct{}{}
		u.roots = append(u.roots, n)
		u.dirty = true
	}

	return true
}

// IncludePackage includes every node owned by the unit's package.
func (u *Unit) IncludePackage() {
	if !u.wholePackage {
		u.wholePackage = true
		u.dirty = true
	}
}

// IncludesWholePackage returns true if IncludePackage was called.
func (u *Unit) IncludesWholePackage() bool {
	return u.wholePackage
}

// IncludeDependenciesOf includes the nodes of this unit's package that other
// depends on. It returns how many such nodes were offered for inclusion.
func (u *Unit) IncludeDependenciesOf(other *Unit) int {
	if other == nil {
		return 0
	}

	count := 0

	for _, n := range other.Dependencies() {
		if u.Include(n) {
			count++
		}
	}

	return count
}

// IsExcluded returns true if the node was excluded.
func (u *Unit) IsExcluded(id model.NodeID) bool {
	_, ok := u.excluded[id]
	return ok
}

// Contains returns true if the node is a member of the unit.
func (u *Unit) Contains(id model.NodeID) bool {
	u.resolve()

	_, ok := u.memberSet[id]

	return ok
}

// Members returns the member nodes in package declaration order: types,
// then elements, then properties.
func (u *Unit) Members() []*model.Node {
	u.resolve()

	return append([]*model.Node(nil), u.members...)
}

// MembersOf returns the member nodes of one kind in declaration order.
func (u *Unit) MembersOf(kind model.NodeKind) []*model.Node {
	u.resolve()

	var out []*model.Node
	for _, n := range u.members {
		if n.Kind() == kind {
			out = append(out, n)
		}
	}

	return out
}

// Types returns the member types.
func (u *Unit) Types() []*model.Node {
	return u.MembersOf(model.KindType)
}

// Elements returns the member elements.
func (u *Unit) Elements() []*model.Node {
	return u.MembersOf(model.KindElement)
}

// Properties returns the member properties.
func (u *Unit) Properties() []*model.Node {
	return u.MembersOf(model.KindProperty)
}

// Excluded returns the excluded nodes of the unit's package in declaration
// order.
func (u *Unit) Excluded() []*model.Node {
	var out []*model.Node
	for _, n := range u.pkg.Nodes() {
		if u.IsExcluded(n.ID) {
			out = append(out, n)
		}
	}

	return out
}

// Dependencies returns the transitive dependency closure of the members,
// minus the members themselves, in breadth-first order.
func (u *Unit) Dependencies() []*model.Node {
	u.resolve()

	if u.provider == nil {
		return nil
	}

	var out []*model.Node
	for _, n := range model.Closure(u.provider, u.members...) {
		if _, member := u.memberSet[n.ID]; !member {
			out = append(out, n)
		}
	}

	return out
}

// resolve recomputes membership from roots and exclusions.
func (u *Unit) resolve() {
	if !u.dirty {
		return
	}

	queue := make([]*model.Node, 0, len(u.roots))
	if u.wholePackage {
		queue = append(queue, u.pkg.Nodes()...)
	}

	queue = append(queue, u.roots...)

	reached := make(map[model.NodeID]struct{}, len(queue))

	for i := 0; i < len(queue); i++ {
		n := queue[i]
		if n == nil || n.Package() != u.Package || u.IsExcluded(n.ID) {
			continue
		}

		if _, ok := reached[n.ID]; ok {
			continue
		}

		reached[n.ID] = struct{}{}

		if u.provider != nil {
			queue = append(queue, u.provider.DependenciesOf(n.ID)...)
		}
	}

	u.members = u.members[:0]
	for _, n := range u.pkg.Nodes() {
		if _, ok := reached[n.ID]; ok {
			u.members = append(u.members, n)
		}
	}

	u.memberSet = reached
	u.dirty = false
}

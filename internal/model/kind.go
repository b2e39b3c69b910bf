package model

import "modelmap/internal/common"

// NodeKind is the kind of a model graph node.
type NodeKind int

const (
	KindUnknown  NodeKind = iota
	KindType              // class or simple type declared in a package
	KindElement           // global element declaration
	KindProperty          // property of a type
)

// Kinds lists the concrete node kinds in traversal order.
var Kinds = []NodeKind{KindType, KindElement, KindProperty}

// String returns a human-readable representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindElement:
		return "element"
	case KindProperty:
		return "property"
	default:
		return common.UnknownStr
	}
}

// IsValid returns true for the concrete kinds.
func (k NodeKind) IsValid() bool {
	return k >= KindType && k <= KindProperty
}

// NamespaceCategory tells which namespace default a node's name is counted
// under.
type NamespaceCategory int

const (
	CategoryNone      NamespaceCategory = iota // not namespace-relevant (types, value properties)
	CategoryElement                            // element names
	CategoryAttribute                          // attribute names
)

// String returns a human-readable representation of the category.
func (c NamespaceCategory) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryElement:
		return "element"
	case CategoryAttribute:
		return "attribute"
	default:
		return common.UnknownStr
	}
}

// Package model holds the in-memory model graph that mappings are resolved
// against.
//
// A graph is a set of packages. Each package owns type, element and property
// nodes, kept in declaration order so that every traversal over a package is
// reproducible. Nodes carry a qualified XML name and the namespace category
// (element or attribute) that name is counted under.
//
// Edges are directed "depends on" relations: a type depends on its
// properties, a property depends on the type of its value, and a global
// element depends on its type. Edges may cross package boundaries.
//
// The Provider interface is the read-only view consumed by the mapping
// resolver; Graph is the default implementation, populated either by hand
// (tests) or by the analyze package from Go sources.
package model

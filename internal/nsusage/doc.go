// Package nsusage counts namespace URIs used by the element and attribute
// names of a package and picks the most used one.
//
// The result seeds a mapping's default element and attribute namespaces
// when the configuration leaves them out. Counting walks the package in
// declaration order, so when two URIs are used equally often the one seen
// first wins, and repeated runs over the same graph always agree.
package nsusage

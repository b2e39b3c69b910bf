// Package analyze builds a model graph from Go packages annotated with
// encoding/xml struct tags.
//
// Each loaded package becomes a model package named by its import path:
//   - every exported struct or named basic type is a type node
//   - a struct with a named XMLName field also declares a global element;
//     when several structs of a package share one XMLName the first declares
//     it and the others are reported as duplicate_element warnings
//   - every exported, non-skipped field is a property node whose XML name
//     and category come from its xml tag ("ns local,attr" is an attribute,
//     ",chardata" a value, anything else an element)
//
// Dependencies follow field types through pointers, slices and arrays to
// named types of any loaded package. Embedded structs make the outer type
// depend on the embedded one.
package analyze

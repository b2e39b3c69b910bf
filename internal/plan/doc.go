// Package plan builds mapping units from configuration.
//
// Build pipeline, per mapping, in declaration order:
//  1. Resolve default namespaces (configured, or most used in the package)
//  2. Exclusion pass: resolve every exclude rule and mark the node excluded
//  3. Inclusion pass:
//     - no includes configured: include the whole package
//     - otherwise resolve every include rule and mark the node included,
//     then include the dependencies of each referenced mapping
//  4. Register the unit under its id
//
// Rules that resolve to nothing are dropped with a debug event. A reference
// to a mapping id that is not registered yet aborts the whole build with a
// *mapping.MissingMappingError; no unit is returned for it.
package plan

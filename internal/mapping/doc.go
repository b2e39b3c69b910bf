// Package mapping provides the mapping unit, a named partition of one model
// package, and the registry of units built so far.
//
// A unit records two kinds of marks: included roots and exclusions. Its
// membership is derived from them on demand:
//
//	member(n) = n is owned by the unit's package
//	            AND n is not excluded
//	            AND (the whole package is included
//	                 OR n is reachable from an included root through
//	                    non-excluded nodes of the package)
//
// Because membership is derived, exclusions dominate inclusions no matter in
// which order the marks were made.
//
// A unit's dependencies are the nodes its members need but that are not
// members themselves: nodes of other packages and excluded nodes. Another
// unit can pull those in with IncludeDependenciesOf.
package mapping

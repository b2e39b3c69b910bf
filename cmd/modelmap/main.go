// Package main provides the CLI entrypoint for modelmap.
//
// modelmap partitions the types, global elements and properties of Go model
// packages into mapping units:
//   - Loads Go packages (AST + go/types) and reads their encoding/xml tags
//   - Applies YAML mapping configurations (includes, excludes, dependencies)
//   - Reports each unit with its default namespaces and external dependencies
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

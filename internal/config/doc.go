// Package config provides the YAML schema, loading and validation of
// mapping configurations.
//
// A configuration file lists mappings. Each mapping partitions one model
// package: it names the package, optionally pins the default element and
// attribute namespaces, and selects nodes with include and exclude rules.
//
// # Schema Overview
//
//	version: "1"
//	map_unconfigured_packages: true
//	mappings:
//	  - id: common
//	    name: Common
//	    package: example.org/common
//	  - id: po
//	    name: PO
//	    package: example.org/po
//	    # absent = infer the most used namespace, "" = explicitly no namespace
//	    default_element_namespace_uri: "urn:po"
//	    default_attribute_namespace_uri: ""
//	    excludes:
//	      types: Internal
//	      elements: ["{urn:po}comment"]
//	      properties:
//	        - PurchaseOrderType.comment     # shorthand
//	        - type: ItemType                # explicit form
//	          name: sku
//	    # without "includes" the whole package is mapped
//	    includes:
//	      types: [PurchaseOrderType]
//	      dependencies_of: common
//
// # Rule Precedence
//
// Excludes always win over includes, including over nodes pulled in as
// dependencies. A rule naming something that does not exist in the package
// selects nothing; this is reported by validation but never fails a build.
// A dependencies_of id must name a mapping declared earlier in the file.
package config

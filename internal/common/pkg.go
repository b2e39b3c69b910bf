package common

import "strings"

// UnknownStr is the String() value of out-of-range enum values.
const UnknownStr = "unknown"

// MappingName derives a mapping name from a package name by replacing
// separators with underscores: "com.example.po" -> "com_example_po",
// "example.org/po" -> "example_org_po".
// Returns empty string if pkg is empty.
func MappingName(pkg string) string {
	if pkg == "" {
		return ""
	}

	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '/', '-', ':':
			return '_'
		default:
			return r
		}
	}, pkg)
}

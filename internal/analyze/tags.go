package analyze

import (
	"reflect"
	"strings"

	"modelmap/internal/model"
)

// XMLTag is the parsed form of an encoding/xml struct tag.
type XMLTag struct {
	Name     model.QName
	Category model.NamespaceCategory
	Skip     bool
}

// ParseXMLTag interprets the xml tag of a field.
//
//	`xml:"-"`                   skipped
//	`xml:"urn:x name"`          element {urn:x}name
//	`xml:"name,attr"`           attribute name
//	`xml:",chardata"`           value (no name)
//	`xml:"a>b"`                 element b (nested under a)
//	no tag / `xml:",omitempty"` element named after the field
func ParseXMLTag(tag reflect.StructTag, fieldName string) XMLTag {
	raw, ok := tag.Lookup("xml")
	if ok && raw == "-" {
		return XMLTag{Skip: true}
	}

	name, opts, _ := strings.Cut(raw, ",")

	category := model.CategoryElement

	for _, opt := range strings.Split(opts, ",") {
		switch opt {
		case "attr":
			category = model.CategoryAttribute
		case "chardata", "cdata", "innerxml", "comment", "any":
			return XMLTag{Category: model.CategoryNone}
		}
	}

	var space string
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		space, name = strings.TrimSpace(name[:i]), name[i+1:]
	}

	if i := strings.LastIndexByte(name, '>'); i >= 0 {
		name = name[i+1:]
	}

	if name == "" {
		name = fieldName
	}

	return XMLTag{Name: model.NewQName(space, name), Category: category}
}

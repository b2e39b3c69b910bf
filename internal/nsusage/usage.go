package nsusage

import (
	"modelmap/internal/model"
)

// Count is the number of names using one namespace URI.
type Count struct {
	URI   string `yaml:"uri"`
	Count int    `yaml:"count"`
}

// Histogram holds namespace counts in first-encountered order.
type Histogram []Count

// Tally counts the namespace URIs of every name in pkg that belongs to the
// given category. A nil package yields an empty histogram.
func Tally(pkg *model.Package, category model.NamespaceCategory) Histogram {
	if pkg == nil {
		return nil
	}

	var (
		hist  Histogram
		index = map[string]int{}
	)

	for _, n := range pkg.Nodes() {
		if n.Category != category {
			continue
		}

		uri := n.Name.Space
		if i, ok := index[uri]; ok {
			hist[i].Count++
			continue
		}

		index[uri] = len(hist)
		hist = append(hist, Count{URI: uri, Count: 1})
	}

	return hist
}

// MostUsed returns the URI with the highest count. On a tie the earliest
// entry wins. An empty histogram yields "".
func (h Histogram) MostUsed() string {
	best := -1
	for i, c := range h {
		if best < 0 || c.Count > h[best].Count {
			best = i
		}
	}

	if best < 0 {
		return ""
	}

	return h[best].URI
}

// Total returns the number of counted names.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c.Count
	}

	return total
}

// MostUsedElementNamespaceURI returns the most used namespace URI among the
// element names of pkg, or "" when there are none.
func MostUsedElementNamespaceURI(pkg *model.Package) string {
	return Tally(pkg, model.CategoryElement).MostUsed()
}

// MostUsedAttributeNamespaceURI returns the most used namespace URI among the
// attribute names of pkg, or "" when there are none.
func MostUsedAttributeNamespaceURI(pkg *model.Package) string {
	return Tally(pkg, model.CategoryAttribute).MostUsed()
}

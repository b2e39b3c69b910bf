package match

import (
	"sort"
)

// MinSimilarity is the lowest normalized similarity a suggestion may have.
const MinSimilarity = 0.6

// Candidate is a name scored against a query.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those reaching
// MinSimilarity, best first. Equal scores keep the order of candidates.
func Rank(name string, candidates []string) []Candidate {
	query := Normalize(name)

	var out []Candidate

	for _, c := range candidates {
		score := Similarity(query, Normalize(c))
		if score < MinSimilarity {
			continue
		}

		out = append(out, Candidate{Name: c, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// Suggest returns the best candidate for name. It returns false when no
// candidate is similar enough or name itself is a candidate.
func Suggest(name string, candidates []string) (string, bool) {
	for _, c := range candidates {
		if c == name {
			return "", false
		}
	}

	ranked := Rank(name, candidates)
	if len(ranked) == 0 {
		return "", false
	}

	return ranked[0].Name, true
}

package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-rune insertions, deletions or substitutions that turn
// one into the other.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	// one row of the matrix, indexed by position in the shorter string
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			up := row[i]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[i] = min(up+1, row[i-1]+1, diag+cost)
			diag = up
		}
	}

	return row[len(ra)]
}

// Similarity returns 1 - distance/longest-length, from 0 (nothing in
// common) to 1 (identical). Two empty strings are identical.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

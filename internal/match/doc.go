// Package match suggests the closest model name for a rule that selects
// nothing, so configuration typos can be reported with a likely fix.
//
// Key functions:
//   - Normalize: folds a name for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders candidate names by similarity
//   - Suggest: picks the best candidate above MinSimilarity
package match

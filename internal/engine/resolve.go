package engine

import "strings"

// ResolveName matches a free-text fragment against a set of canonical names
// using bidirectional case-insensitive substring containment: a candidate
// matches when the query is contained in it or it is contained in the query.
// The first candidate that matches, in input order, wins; there is no scoring
// or tie-break beyond order. Short or overlapping names can therefore be
// ambiguous ("Red" matches both "Red Sox" and "Redskins").
func ResolveName(query string, candidates []string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	for _, candidate := range candidates {
		c := strings.ToLower(candidate)
		if strings.Contains(c, q) || strings.Contains(q, c) {
			return candidate, true
		}
	}
	return "", false
}

// Package fuzzy provides best-effort closest-match suggestions for mistyped
// input, used to improve CLI error messages ("did you mean ...?").
//
// Matching is by Levenshtein edit distance. The package has no knowledge of
// config or credential semantics and is reusable for any candidate set.
package fuzzy

import (
	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate with the smallest edit distance to input.
// Ties are broken by first occurrence in candidates, so the result is
// deterministic for a fixed candidate order. The second return value is
// false when candidates is empty.
func Closest(candidates []string, input string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	best := candidates[0]
	bestDist := levenshtein.ComputeDistance(input, best)
	for _, c := range candidates[1:] {
		if d := levenshtein.ComputeDistance(input, c); d < bestDist {
			best = c
			bestDist = d
		}
	}

	return best, true
}

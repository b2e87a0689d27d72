package ledger

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestCategory returns the known category closest to input when input
// looks like a typo of it. Exact matches produce no suggestion.
func SuggestCategory(input string, known []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}
	maxDist := 1
	if len(needle) >= 5 {
		maxDist = 2
	}

	best, bestDist := "", maxDist+1
	for _, k := range known {
		if k == input {
			return "", false
		}
		d := levenshtein.ComputeDistance(needle, strings.ToLower(k))
		if d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}

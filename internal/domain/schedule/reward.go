package schedule

import "strings"

// Combo-service eligibility is a name heuristic carried over from the
// catalog: a service qualifies when its name contains both a cut term and a
// beard term, case-insensitively. The catalog is French ("Coupe + Barbe")
// but translated names keep qualifying.
var (
	cutTerms   = []string{"coupe", "cut"}
	beardTerms = []string{"barbe", "beard"}
)

// IsComboService reports whether a service name qualifies for the loyalty
// discount.
func IsComboService(name string) bool {
	lower := strings.ToLower(name)
	return containsAny(lower, cutTerms) && containsAny(lower, beardTerms)
}

// FirstComboService returns the index of the first qualifying service name,
// or -1 when none qualifies.
func FirstComboService(names []string) int {
	for i, n := range names {
		if IsComboService(n) {
			return i
		}
	}
	return -1
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

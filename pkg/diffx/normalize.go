// normalize.go - pre-comparison scalar transformations (spec.md §4.4).
//
// Case folding and whitespace stripping for strings, and epsilon-tolerant
// float comparison. Each function is pure over a single scalar pair; the
// engine applies them at scalar-comparison time, never during descent.
package diffx

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// caseFolder performs Unicode simple case folding. golang.org/x/text/cases
// gives us a real Unicode-aware fold (not just ASCII strings.ToLower) the
// way the teacher's ignore_case handling needs for non-Latin scripts.
var caseFolder = cases.Fold()

// foldString applies ignore_whitespace (remove all Unicode whitespace code
// points) and ignore_case (Unicode simple case fold) per spec.md §4.4.
func foldString(s string, ignoreWhitespace, ignoreCase bool) string {
	if ignoreWhitespace {
		s = stripWhitespace(s)
	}
	if ignoreCase {
		s = caseFolder.String(s)
	}
	return s
}

// stripWhitespace removes every Unicode whitespace code point from s,
// not just leading/trailing runs (spec.md §4.4 — "remove all Unicode
// whitespace code points", stricter than the teacher's strings.TrimSpace).
func stripWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// floatsEquivalent implements spec.md §4.4's Float equivalence: NaN is
// never equivalent to anything (including itself); +/-0.0 are equivalent;
// +/-Infinity equals itself; otherwise exact equality unless epsilon > 0,
// in which case |a-b| <= epsilon is equivalence.
func floatsEquivalent(a, b, epsilon float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if epsilon > 0 {
		return math.Abs(a-b) <= epsilon
	}
	return a == b
}

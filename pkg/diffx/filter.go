// filter.go - path_filter post-filtering (spec.md §4.5).
//
// Unlike the teacher's pathMatches, which anchors on path-prefix segment
// boundaries, path_filter is a plain substring test against the rendered
// path: spec.md is explicit that a partial segment match counts.
package diffx

import "strings"

// filterByPathSubstring keeps only the differences whose rendered Path
// contains filter as a substring, preserving original order.
func filterByPathSubstring(diffs []Difference, filter string) []Difference {
	if filter == "" {
		return diffs
	}

	out := make([]Difference, 0, len(diffs))
	for _, d := range diffs {
		if strings.Contains(d.Path, filter) {
			out = append(out, d)
		}
	}
	return out
}

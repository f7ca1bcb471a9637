// unified.go - the unified-diff-style formatter (spec.md §4.6).
//
// Grounded on the teacher's pack-mate nebari-dev/nebi internal/diff/toml.go
// FormatUnifiedDiff: "--- / +++ / @@ @@" headers with changes grouped under
// their section. Here sections are top-level path keys rather than TOML
// table names, and context lines (when present in the input, i.e. the
// caller ran Diff with ShowUnchanged) come from the teacher's
// detailed_formatter.go context-window idea rather than nebi's sectionless
// grouping.
package diffx

import (
	"fmt"
	"strings"
)

// formatUnified renders diffs as a unified-diff-style text block grouped
// by top-level path. Unchanged records are only ever present in diffs when
// the caller ran Diff with ShowUnchanged set; formatUnified uses up to
// contextLines of them immediately surrounding each change as context,
// exactly as spec.md §4.6 describes. With no Unchanged records in diffs
// (the common case), contextLines has no effect.
func formatUnified(diffs []Difference, contextLines int) string {
	if len(diffs) == 0 {
		return ""
	}

	groups, order := groupByTopLevel(diffs)

	var sb strings.Builder
	sb.WriteString("--- old\n")
	sb.WriteString("+++ new\n")

	for _, key := range order {
		group := groups[key]
		if !groupHasChange(group) {
			continue
		}

		fmt.Fprintf(&sb, "@@ %s @@\n", key)
		writeUnifiedGroup(&sb, group, contextLines)
	}

	return sb.String()
}

func groupByTopLevel(diffs []Difference) (map[string][]Difference, []string) {
	groups := make(map[string][]Difference)
	var order []string

	for _, d := range diffs {
		key := topLevelKey(d.Path)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], d)
	}

	return groups, order
}

// topLevelKey returns the leading path segment: the text up to the first
// '.' or '[', or the whole path if it has neither.
func topLevelKey(path string) string {
	if path == "" {
		return "(root)"
	}
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}

func groupHasChange(group []Difference) bool {
	for _, d := range group {
		if d.Kind != DiffUnchanged {
			return true
		}
	}
	return false
}

// writeUnifiedGroup renders one top-level group: changes as -/+ lines,
// with up to contextLines Unchanged neighbors (on either side of the
// nearest change) rendered as plain context lines.
func writeUnifiedGroup(sb *strings.Builder, group []Difference, contextLines int) {
	changeIdx := make([]int, 0, len(group))
	for i, d := range group {
		if d.Kind != DiffUnchanged {
			changeIdx = append(changeIdx, i)
		}
	}

	included := make([]bool, len(group))
	for _, ci := range changeIdx {
		included[ci] = true
		for off := 1; off <= contextLines; off++ {
			if ci-off >= 0 {
				included[ci-off] = true
			}
			if ci+off < len(group) {
				included[ci+off] = true
			}
		}
	}

	for i, d := range group {
		if !included[i] {
			continue
		}
		writeUnifiedLine(sb, d)
	}
}

func writeUnifiedLine(sb *strings.Builder, d Difference) {
	switch d.Kind {
	case DiffUnchanged:
		fmt.Fprintf(sb, "  %s: %s\n", d.Path, renderScalar(d.Value))
	case DiffAdded:
		fmt.Fprintf(sb, "+ %s: %s\n", d.Path, renderScalar(d.Value))
	case DiffRemoved:
		fmt.Fprintf(sb, "- %s: %s\n", d.Path, renderScalar(d.Value))
	case DiffModified, DiffTypeChanged:
		fmt.Fprintf(sb, "- %s: %s\n", d.Path, renderScalar(d.Old))
		fmt.Fprintf(sb, "+ %s: %s\n", d.Path, renderScalar(d.New))
	}
}

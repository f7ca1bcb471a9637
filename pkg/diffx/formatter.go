// formatter.go - output formatting (spec.md §4.6).
//
// Every formatter is a pure function over the difference list: it renders,
// it never reorders or recomputes. Grounded on the teacher's
// Formatter/GetFormatter dispatch (formatter.go) and CompactFormatter's
// prefix/arrow rendering, generalized from the teacher's five CI-annotation
// styles down to the spec's four wire formats.
package diffx

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatOutput renders diffs in the named format (spec.md §6's
// format_output). Valid names are "diffx", "json", "yaml", and "unified".
func FormatOutput(diffs []Difference, format string) (string, error) {
	return FormatOutputWithContext(diffs, format, 0)
}

// FormatOutputWithContext is FormatOutput with the unified formatter's
// context_lines plumbed through explicitly, since format_output itself
// takes no Options (spec.md §6) but the unified style needs a line count.
func FormatOutputWithContext(diffs []Difference, format string, contextLines int) (string, error) {
	if err := validateOutputFormat(format); err != nil {
		return "", err
	}

	switch format {
	case "diffx":
		return formatDiffx(diffs), nil
	case "json":
		return formatJSON(diffs)
	case "yaml":
		return formatYAML(diffs)
	case "unified":
		return formatUnified(diffs, contextLines), nil
	default:
		return "", newConfigError("format_output", "unknown output format %q", format)
	}
}

// formatDiffx renders the native compact style: one line per difference,
// prefix + path + optional value(s).
func formatDiffx(diffs []Difference) string {
	var sb strings.Builder
	for _, d := range diffs {
		sb.WriteString(diffxPrefix(d.Kind))
		sb.WriteByte(' ')
		sb.WriteString(d.Path)

		switch d.Kind {
		case DiffAdded, DiffRemoved, DiffUnchanged:
			sb.WriteString(": ")
			sb.WriteString(renderScalar(d.Value))
		case DiffModified, DiffTypeChanged:
			sb.WriteString(": ")
			sb.WriteString(renderScalar(d.Old))
			sb.WriteString(" → ")
			sb.WriteString(renderScalar(d.New))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func diffxPrefix(k DiffKind) string {
	switch k {
	case DiffAdded:
		return "+"
	case DiffRemoved:
		return "-"
	case DiffModified:
		return "~"
	case DiffTypeChanged:
		return "!"
	case DiffUnchanged:
		return "="
	default:
		return "?"
	}
}

func renderScalar(v Value) string {
	if v.Kind == KindNull {
		return "null"
	}
	return fmt.Sprintf("%v", v.Native())
}

// wireRecord is the canonical JSON/YAML shape for a Difference (spec.md
// §6). omitempty on every optional field means each formatted record only
// carries the fields its Kind actually uses.
type wireRecord struct {
	Type      string `json:"type" yaml:"type"`
	Path      string `json:"path" yaml:"path"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty"`
	OldValue  any    `json:"old_value,omitempty" yaml:"old_value,omitempty"`
	NewValue  any    `json:"new_value,omitempty" yaml:"new_value,omitempty"`
	OldType   string `json:"old_type,omitempty" yaml:"old_type,omitempty"`
	NewType   string `json:"new_type,omitempty" yaml:"new_type,omitempty"`
	ValueType string `json:"value_type,omitempty" yaml:"value_type,omitempty"`
}

func toWireRecords(diffs []Difference) []wireRecord {
	records := make([]wireRecord, len(diffs))
	for i, d := range diffs {
		r := wireRecord{Type: d.Kind.String(), Path: d.Path}
		switch d.Kind {
		case DiffAdded, DiffRemoved, DiffUnchanged:
			r.Value = d.Value.Native()
			r.ValueType = d.ValueType
		case DiffModified, DiffTypeChanged:
			r.OldValue = d.Old.Native()
			r.NewValue = d.New.Native()
			r.OldType = d.OldType
			r.NewType = d.NewType
		}
		records[i] = r
	}
	return records
}

func formatJSON(diffs []Difference) (string, error) {
	records := toWireRecords(diffs)
	if records == nil {
		records = []wireRecord{}
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", newDiffError("format_output", "", err)
	}
	return string(out) + "\n", nil
}

func formatYAML(diffs []Difference) (string, error) {
	records := toWireRecords(diffs)
	if records == nil {
		records = []wireRecord{}
	}

	out, err := yaml.Marshal(records)
	if err != nil {
		return "", newDiffError("format_output", "", err)
	}
	return string(out), nil
}

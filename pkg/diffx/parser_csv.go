// parser_csv.go - CSV → Value (spec.md §4.7).
//
// Built on the standard library's encoding/csv. No example repo in the
// pack imports a third-party CSV library; cue-lang's encoding/csv package
// (pkg/encoding/csv/pkg.go) confirms encoding/csv is the idiomatic choice
// even in a large, dependency-rich module (DESIGN.md).
package diffx

import (
	"bytes"
	"encoding/csv"
	"io"
)

// ParseCSV parses CSV content into a Value (spec.md §4.7): a Sequence of
// Mappings, one per data row, keyed by the header row; every value is a
// String.
func ParseCSV(content []byte) (Value, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return NewSequence(), nil
	}
	if err != nil {
		return Value{}, newDiffError("parse_csv", "", err)
	}

	var rows []Value
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Value{}, newDiffError("parse_csv", "", err)
		}

		row := NewMapping()
		for i, col := range header {
			if i < len(record) {
				row.Set(col, NewString(record[i]))
			} else {
				row.Set(col, NewString(""))
			}
		}
		rows = append(rows, row)
	}

	return NewSequence(rows...), nil
}

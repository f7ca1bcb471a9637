// parser_json.go - JSON → Value (spec.md §4.7).
//
// Built on the standard library's encoding/json with UseNumber(), so that
// each number is inspected before choosing Integer or Float instead of
// collapsing everything to float64 the way json.Unmarshal into interface{}
// normally would. JSON has no third-party alternative in the example pack
// that any repo actually imports for decoding (DESIGN.md).
package diffx

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// ParseJSON parses JSON content into a Value (spec.md §4.7).
func ParseJSON(content []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, newDiffError("parse_json", "", err)
	}

	return jsonToValue(raw), nil
}

func jsonToValue(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Null
	case bool:
		return NewBool(v)
	case json.Number:
		return jsonNumberToValue(v)
	case string:
		return NewString(v)
	case []any:
		elems := make([]Value, len(v))
		for i, e := range v {
			elems[i] = jsonToValue(e)
		}
		return NewSequence(elems...)
	case map[string]any:
		// encoding/json does not preserve source key order; JSON object
		// key order is not semantically significant to this package
		// (spec.md §9's mapping-order note), so a deterministic
		// lexical order stands in for "the" order.
		m := NewMapping()
		for _, k := range sortedKeys(v) {
			m.Set(k, jsonToValue(v[k]))
		}
		return m
	default:
		return Null
	}
}

// jsonNumberToValue maps a number without fraction or exponent that fits
// int64 to Integer. An integer outside the int64 range falls back to Float,
// which is lossy; a number too large even for float64 is kept as a String
// of its source text.
func jsonNumberToValue(n json.Number) Value {
	s := n.String()
	if !hasFractionOrExponent(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return NewInteger(i)
		}
	}
	f, err := n.Float64()
	if err != nil {
		return NewString(s)
	}
	return NewFloat(f)
}

func hasFractionOrExponent(s string) bool {
	for _, r := range s {
		if r == '.' || r == 'e' || r == 'E' {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

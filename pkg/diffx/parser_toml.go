// parser_toml.go - TOML → Value (spec.md §4.7).
//
// Grounded on the pack-mate nebari-dev/nebi's CompareToml (internal/diff/
// toml.go): unmarshal into interface{} via github.com/pelletier/go-toml/v2,
// then walk the result with the same "sort keys for deterministic output"
// discipline nebi uses, since go-toml/v2 does not preserve table order
// when decoding into a generic map.
package diffx

import (
	"sort"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// ParseTOML parses TOML content into a Value (spec.md §4.7). Dates and
// times render as String, per the spec's explicit contract for this format.
func ParseTOML(content []byte) (Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(content, &raw); err != nil {
		return Value{}, newDiffError("parse_toml", "", err)
	}

	return tomlToValue(raw), nil
}

func tomlToValue(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Null
	case bool:
		return NewBool(v)
	case int64:
		return NewInteger(v)
	case int:
		return NewInteger(int64(v))
	case float64:
		return NewFloat(v)
	case string:
		return NewString(v)
	case time.Time:
		return NewString(v.Format(time.RFC3339Nano))
	case toml.LocalDate:
		return NewString(v.String())
	case toml.LocalTime:
		return NewString(v.String())
	case toml.LocalDateTime:
		return NewString(v.String())
	case []any:
		elems := make([]Value, len(v))
		for i, e := range v {
			elems[i] = tomlToValue(e)
		}
		return NewSequence(elems...)
	case map[string]any:
		m := NewMapping()
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			m.Set(k, tomlToValue(v[k]))
		}
		return m
	default:
		return Null
	}
}

// Package diffx provides semantic diffing for structured data: JSON, YAML,
// TOML, INI, CSV, and XML documents are parsed into a common tree Value and
// compared at the logical level rather than as text.
package diffx

import "fmt"

// Kind tags the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindSequence
	KindMapping
)

// String returns the variant tag name used in show_types output
// ("null", "bool", "integer", "float", "string", "sequence", "mapping").
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is the tagged tree representation over which diffing is defined.
// The zero Value is Null. Construct scalars and containers with the New*
// helpers rather than setting fields directly; the engine relies on exactly
// one of the typed fields being populated per Kind.
type Value struct {
	Kind Kind

	Bool    bool
	Integer int64
	Float   float64
	Str     string

	Seq []Value

	// Keys preserves mapping iteration/insertion order; Map holds the
	// values by key. Order is observational only (spec.md §9) and never
	// participates in equality.
	Keys []string
	Map  map[string]Value
}

// Null is the Null value.
var Null = Value{Kind: KindNull}

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NewInteger returns a signed 64-bit Integer value.
func NewInteger(i int64) Value { return Value{Kind: KindInteger, Integer: i} }

// NewFloat returns a Float value.
func NewFloat(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// NewString returns a String value.
func NewString(s string) Value { return Value{Kind: KindString, Str: s} }

// NewSequence returns a Sequence value over the given elements.
func NewSequence(elems ...Value) Value {
	return Value{Kind: KindSequence, Seq: elems}
}

// NewMapping returns an empty Mapping ready for Set calls.
func NewMapping() Value {
	return Value{Kind: KindMapping, Map: make(map[string]Value)}
}

// Set inserts or updates key in a Mapping value, preserving first-seen
// key order. Panics if called on a non-Mapping value — a programmer error,
// not a data error.
func (v *Value) Set(key string, val Value) {
	if v.Kind != KindMapping {
		panic(fmt.Sprintf("diffx: Set called on non-mapping Value (kind %s)", v.Kind))
	}
	if _, exists := v.Map[key]; !exists {
		v.Keys = append(v.Keys, key)
	}
	v.Map[key] = val
}

// Get returns the value for key in a Mapping and whether it was present.
func (v *Value) Get(key string) (Value, bool) {
	if v.Kind != KindMapping {
		return Value{}, false
	}
	val, ok := v.Map[key]
	return val, ok
}

// IsScalar reports whether the value is one of Null, Bool, Integer, Float,
// or String — the variants compared by §4.4 rather than recursed into.
func (v Value) IsScalar() bool {
	switch v.Kind {
	case KindNull, KindBool, KindInteger, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// Native converts a Value back into a plain Go value (nil, bool, int64,
// float64, string, []any, or map[string]any for a mapping, which does not
// keep the Value's key order) for formatters and callers that want to
// marshal it with encoding/json or gopkg.in/yaml.v3.
func (v Value) Native() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindInteger:
		return v.Integer
	case KindFloat:
		return v.Float
	case KindString:
		return v.Str
	case KindSequence:
		out := make([]any, len(v.Seq))
		for i, e := range v.Seq {
			out[i] = e.Native()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.Keys))
		for _, k := range v.Keys {
			out[k] = v.Map[k].Native()
		}
		return out
	default:
		return nil
	}
}

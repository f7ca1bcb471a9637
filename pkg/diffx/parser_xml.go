// parser_xml.go - XML → Value (spec.md §4.7, §4.6's convention).
//
// Built on the standard library's encoding/xml, walked token-by-token
// rather than unmarshaled into a struct (there is no fixed schema). The
// text/attribute convention is inspired by cue-lang-cue's BadgerFish-like
// "koala" encoding (encoding/xml/koala/decode.go) but adapted to plain Go
// map keys: text under "#text", attributes under "@attrs".
package diffx

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// ParseXML parses XML content into a Value (spec.md §4.7) following the
// "#text"/"@attrs" convention fixed in SPEC_FULL.md §4.6.
func ParseXML(content []byte) (Value, error) {
	dec := xml.NewDecoder(bytes.NewReader(content))

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return Null, nil
		}
		if err != nil {
			return Value{}, newDiffError("parse_xml", "", err)
		}

		if start, ok := tok.(xml.StartElement); ok {
			return xmlElementToValue(dec, start)
		}
	}
}

// xmlElementToValue consumes tokens up to and including the matching
// EndElement for start, building that element's Value.
func xmlElementToValue(dec *xml.Decoder, start xml.StartElement) (Value, error) {
	attrs := NewMapping()
	for _, a := range start.Attr {
		attrs.Set(a.Name.Local, NewString(a.Value))
	}

	var text strings.Builder
	children := NewMapping()
	var childOrder []string

	for {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, newDiffError("parse_xml", "", err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			childVal, err := xmlElementToValue(dec, t)
			if err != nil {
				return Value{}, err
			}
			name := t.Name.Local
			mergeXMLChild(children, &childOrder, name, childVal)
		case xml.EndElement:
			return buildXMLElementValue(attrs, children, childOrder, text.String()), nil
		}
	}
}

// mergeXMLChild records a child element under name, promoting to a
// Sequence the moment a second occurrence of the same tag is seen.
func mergeXMLChild(children Value, order *[]string, name string, val Value) {
	existing, ok := children.Get(name)
	if !ok {
		children.Set(name, val)
		*order = append(*order, name)
		return
	}

	if existing.Kind == KindSequence {
		existing.Seq = append(existing.Seq, val)
		children.Set(name, existing)
		return
	}

	children.Set(name, NewSequence(existing, val))
}

// buildXMLElementValue always returns a Mapping, per the convention fixed
// in SPEC_FULL.md §4.6: every element becomes a Mapping, text content goes
// under "#text" (omitted when empty), attributes under "@attrs". A leaf
// element with no attributes, no children, and no text becomes an empty
// Mapping rather than collapsing to a bare scalar, so that adding a child
// to a previously-text-only element is an Added leaf under that element's
// path rather than a TypeChanged at it.
func buildXMLElementValue(attrs, children Value, childOrder []string, rawText string) Value {
	trimmed := strings.TrimSpace(rawText)

	m := NewMapping()
	if len(attrs.Keys) > 0 {
		m.Set("@attrs", attrs)
	}
	for _, name := range childOrder {
		val, _ := children.Get(name)
		m.Set(name, val)
	}
	if trimmed != "" {
		m.Set("#text", NewString(trimmed))
	}
	return m
}

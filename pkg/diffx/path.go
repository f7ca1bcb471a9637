// path.go - the path model (spec.md §3, §4.3).
//
// A path addresses a node inside a Value as a sequence of segments: a
// mapping key, a sequence index, or an identity tag produced by keyed
// sequence alignment. Rendering follows the teacher's joinPath/cleanPath
// convention (comparator.go), extended with bracketed index/id-tag segments.
package diffx

import (
	"fmt"
	"strconv"
	"strings"
)

// SegmentKind tags the variant of a path Segment.
type SegmentKind int

const (
	SegmentKey SegmentKind = iota
	SegmentIndex
	SegmentIDTag
)

// Segment is one element of a Path: a mapping Key, a sequence Index, or
// an IDTag (array_id_key, value) produced by the keyed sequence aligner.
type Segment struct {
	Kind SegmentKind

	Key string // SegmentKey

	Index int // SegmentIndex

	IDKey   string // SegmentIDTag
	IDValue string // SegmentIDTag
}

// KeySegment builds a mapping-key segment.
func KeySegment(name string) Segment { return Segment{Kind: SegmentKey, Key: name} }

// IndexSegment builds a sequence-index segment.
func IndexSegment(i int) Segment { return Segment{Kind: SegmentIndex, Index: i} }

// IDTagSegment builds an identity-tag segment for keyed sequence alignment.
func IDTagSegment(idKey, idValue string) Segment {
	return Segment{Kind: SegmentIDTag, IDKey: idKey, IDValue: idValue}
}

// Path is an ordered list of segments addressing a node inside a Value.
type Path []Segment

// Append returns a new Path with seg appended; Path itself is treated as
// immutable so callers can safely share a prefix across recursive calls.
func (p Path) Append(seg Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// String renders the path per spec.md §3: every Key segment except the
// first segment of the path is preceded by "." (so "a.b", "a[2].name",
// "[id=1].n"); an Index segment renders as "[i]"; an IDTag segment renders
// as "[key=value]". There is no leading dot.
func (p Path) String() string {
	var sb strings.Builder
	for i, seg := range p {
		switch seg.Kind {
		case SegmentKey:
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(seg.Key)
		case SegmentIndex:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Index))
			sb.WriteByte(']')
		case SegmentIDTag:
			sb.WriteByte('[')
			sb.WriteString(seg.IDKey)
			sb.WriteByte('=')
			sb.WriteString(seg.IDValue)
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// formatIDValue renders a scalar Value as the textual id used inside an
// IDTag segment (e.g. "3" for an Integer, "prod" for a String).
func formatIDValue(v Value) string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInteger:
		return strconv.FormatInt(v.Integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	default:
		return fmt.Sprintf("%v", v.Native())
	}
}

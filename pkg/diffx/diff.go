// diff.go - the semantic diff engine (spec.md §4.1-§4.3).
//
// Recursive structural comparison, dispatching on the pair of variants and
// producing an ordered difference list. Contains the identity-keyed
// sequence aligner. The walk itself never recurses natively: pendingNode
// models a to-be-expanded subtree and diffTree/flattenInto drive the
// traversal with an explicit heap-allocated stack, so arbitrarily deep
// inputs cannot overflow the Go call stack (spec.md §9).
package diffx

// DiffKind is the tag of a Difference record (spec.md §3).
type DiffKind int

const (
	// DiffAdded: key or element present only in the new side.
	DiffAdded DiffKind = iota
	// DiffRemoved: present only in the old side.
	DiffRemoved
	// DiffModified: same variant on both sides, scalars not equivalent.
	DiffModified
	// DiffTypeChanged: variants differ at this path.
	DiffTypeChanged
	// DiffUnchanged: leaf compared equal; only emitted when ShowUnchanged.
	DiffUnchanged
)

func (k DiffKind) String() string {
	switch k {
	case DiffAdded:
		return "Added"
	case DiffRemoved:
		return "Removed"
	case DiffModified:
		return "Modified"
	case DiffTypeChanged:
		return "TypeChanged"
	case DiffUnchanged:
		return "Unchanged"
	default:
		return "Unknown"
	}
}

// Difference is one record in the output list (spec.md §3).
type Difference struct {
	Path string
	Kind DiffKind

	// Value holds the single value for Added, Removed, and Unchanged.
	Value Value
	// Old and New hold both sides for Modified and TypeChanged.
	Old Value
	New Value

	// Variant tag names, populated only when Options.ShowTypes is set.
	OldType   string
	NewType   string
	ValueType string
}

// Diff compares old and new and returns the ordered list of semantic
// differences between them (spec.md §4.1). The only failure mode is a
// malformed Options; the engine itself is total on valid inputs.
func Diff(old, new Value, opts *Options) ([]Difference, error) {
	ro, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	diffs := diffTree(Path{}, old, new, ro)

	if ro.pathFilter != "" {
		diffs = filterByPathSubstring(diffs, ro.pathFilter)
	}

	return diffs, nil
}

// pendingNode is a subtree awaiting expansion by processNode.
type pendingNode struct {
	path Path
	a, b Value
	// items is populated once the node has been processed; each entry is
	// either a concrete Difference or a further pendingNode to expand.
	items []item
}

// item is one entry produced by processNode: either a resolved Difference
// or a reference to a child subtree that still needs expanding.
type item struct {
	diff *Difference
	node *pendingNode
}

// diffTree drives the traversal with an explicit stack instead of
// recursion, then flattens the resulting tree of pendingNodes in order.
func diffTree(path Path, a, b Value, ro *resolvedOptions) []Difference {
	root := &pendingNode{path: path, a: a, b: b}

	stack := []*pendingNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n.items = processNode(n.path, n.a, n.b, ro)
		for _, it := range n.items {
			if it.node != nil {
				stack = append(stack, it.node)
			}
		}
	}

	var out []Difference
	flattenInto(&out, root)
	return out
}

// flattenInto walks the pendingNode tree depth-first (parent before
// children, siblings in order) and appends its concrete differences to
// out. Iterative for the same reason diffTree is.
func flattenInto(out *[]Difference, root *pendingNode) {
	type frame struct {
		node *pendingNode
		idx  int
	}

	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.node.items) {
			stack = stack[:len(stack)-1]
			continue
		}
		it := top.node.items[top.idx]
		top.idx++

		if it.diff != nil {
			*out = append(*out, *it.diff)
		} else if it.node != nil {
			stack = append(stack, frame{it.node, 0})
		}
	}
}

// processNode computes the items for a single (a, b) pair without
// recursing into children itself; children are returned as pendingNodes
// for the caller to push onto its own stack.
func processNode(path Path, a, b Value, ro *resolvedOptions) []item {
	if a.Kind != b.Kind {
		d := &Difference{Path: path.String(), Kind: DiffTypeChanged, Old: a, New: b}
		if ro.showTypes {
			d.OldType = a.Kind.String()
			d.NewType = b.Kind.String()
		}
		return []item{{diff: d}}
	}

	if a.IsScalar() {
		if scalarsEqual(a, b, ro) {
			if !ro.showUnchanged {
				return nil
			}
			d := &Difference{Path: path.String(), Kind: DiffUnchanged, Value: a}
			if ro.showTypes {
				d.ValueType = a.Kind.String()
			}
			return []item{{diff: d}}
		}
		d := &Difference{Path: path.String(), Kind: DiffModified, Old: a, New: b}
		if ro.showTypes {
			d.OldType = a.Kind.String()
			d.NewType = b.Kind.String()
		}
		return []item{{diff: d}}
	}

	switch a.Kind {
	case KindMapping:
		return processMapping(path, a, b, ro)
	case KindSequence:
		return processSequence(path, a, b, ro)
	default:
		return nil
	}
}

// scalarsEqual implements spec.md §4.4's scalar equivalence relation.
// Integer vs Float never reaches here: the Kind mismatch above always
// routes cross-variant pairs to TypeChanged first.
func scalarsEqual(a, b Value, ro *resolvedOptions) bool {
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindInteger:
		return a.Integer == b.Integer
	case KindFloat:
		return floatsEquivalent(a.Float, b.Float, ro.epsilon)
	case KindString:
		as := foldString(a.Str, ro.ignoreWhitespace, ro.ignoreCase)
		bs := foldString(b.Str, ro.ignoreWhitespace, ro.ignoreCase)
		return as == bs
	default:
		return false
	}
}

// processMapping implements the structural recursion over Mappings
// (spec.md §4.2 point 3): union of keys in order keys(a) ∪ (keys(b) \
// keys(a)), with ignore_keys_regex pruning whole subtrees during descent.
func processMapping(path Path, a, b Value, ro *resolvedOptions) []item {
	var items []item
	seen := make(map[string]bool, len(a.Keys))

	for _, k := range a.Keys {
		seen[k] = true
		if ro.ignoreKeysRegex != nil && ro.ignoreKeysRegex.MatchString(k) {
			continue
		}

		childPath := path.Append(KeySegment(k))
		av := a.Map[k]

		bv, ok := b.Map[k]
		if !ok {
			d := &Difference{Path: childPath.String(), Kind: DiffRemoved, Value: av}
			if ro.showTypes {
				d.ValueType = av.Kind.String()
			}
			items = append(items, item{diff: d})
			continue
		}

		items = append(items, item{node: &pendingNode{path: childPath, a: av, b: bv}})
	}

	for _, k := range b.Keys {
		if seen[k] {
			continue
		}
		if ro.ignoreKeysRegex != nil && ro.ignoreKeysRegex.MatchString(k) {
			continue
		}

		childPath := path.Append(KeySegment(k))
		bv := b.Map[k]
		d := &Difference{Path: childPath.String(), Kind: DiffAdded, Value: bv}
		if ro.showTypes {
			d.ValueType = bv.Kind.String()
		}
		items = append(items, item{diff: d})
	}

	return items
}

// processSequence dispatches to the positional or keyed alignment regime
// based on whether array_id_key is set (spec.md §4.3).
func processSequence(path Path, a, b Value, ro *resolvedOptions) []item {
	if ro.arrayIDKey != "" {
		return processSequenceKeyed(path, a, b, ro)
	}
	return processSequencePositional(path, a.Seq, b.Seq, ro, func(i int) Segment { return IndexSegment(i) }, path)
}

// processSequencePositional aligns two element slices by index. base
// lets keyed-regime's unkeyed fallback reuse this with its own base path.
func processSequencePositional(_ Path, a, b []Value, ro *resolvedOptions, seg func(int) Segment, base Path) []item {
	var items []item

	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		childPath := base.Append(seg(i))
		switch {
		case i >= len(a):
			bv := b[i]
			d := &Difference{Path: childPath.String(), Kind: DiffAdded, Value: bv}
			if ro.showTypes {
				d.ValueType = bv.Kind.String()
			}
			items = append(items, item{diff: d})
		case i >= len(b):
			av := a[i]
			d := &Difference{Path: childPath.String(), Kind: DiffRemoved, Value: av}
			if ro.showTypes {
				d.ValueType = av.Kind.String()
			}
			items = append(items, item{diff: d})
		default:
			items = append(items, item{node: &pendingNode{path: childPath, a: a[i], b: b[i]}})
		}
	}

	return items
}

// partitionByID splits seq into keyed elements (Mapping with idKey present
// and a scalar value) and unkeyed elements, per spec.md §4.3. A repeated
// id keeps its first occurrence keyed; later occurrences fall back to the
// unkeyed partition for that side.
func partitionByID(seq []Value, idKey string) (ids []string, byID map[string]Value, unkeyed []Value) {
	byID = make(map[string]Value)
	seenIDs := make(map[string]bool)

	for _, v := range seq {
		if v.Kind == KindMapping {
			if idVal, ok := v.Map[idKey]; ok && idVal.IsScalar() {
				idStr := formatIDValue(idVal)
				if !seenIDs[idStr] {
					seenIDs[idStr] = true
					ids = append(ids, idStr)
					byID[idStr] = v
					continue
				}
			}
		}
		unkeyed = append(unkeyed, v)
	}

	return ids, byID, unkeyed
}

// processSequenceKeyed implements the keyed alignment regime (spec.md
// §4.3): identity-matched elements recurse under an IDTag segment; the
// leftover unkeyed elements fall back to positional alignment among
// themselves.
func processSequenceKeyed(path Path, a, b Value, ro *resolvedOptions) []item {
	aIDs, aByID, aUnkeyed := partitionByID(a.Seq, ro.arrayIDKey)
	bIDs, bByID, _ := partitionByID(b.Seq, ro.arrayIDKey)

	aIDSet := make(map[string]bool, len(aIDs))
	for _, id := range aIDs {
		aIDSet[id] = true
	}

	var items []item

	for _, id := range aIDs {
		av := aByID[id]
		childPath := path.Append(IDTagSegment(ro.arrayIDKey, id))

		if bv, ok := bByID[id]; ok {
			items = append(items, item{node: &pendingNode{path: childPath, a: av, b: bv}})
			continue
		}

		d := &Difference{Path: childPath.String(), Kind: DiffRemoved, Value: av}
		if ro.showTypes {
			d.ValueType = av.Kind.String()
		}
		items = append(items, item{diff: d})
	}

	for _, id := range bIDs {
		if aIDSet[id] {
			continue
		}
		bv := bByID[id]
		childPath := path.Append(IDTagSegment(ro.arrayIDKey, id))
		d := &Difference{Path: childPath.String(), Kind: DiffAdded, Value: bv}
		if ro.showTypes {
			d.ValueType = bv.Kind.String()
		}
		items = append(items, item{diff: d})
	}

	_, _, bUnkeyed := partitionByID(b.Seq, ro.arrayIDKey)
	unkeyedItems := processSequencePositional(path, aUnkeyed, bUnkeyed, ro, func(i int) Segment { return IndexSegment(i) }, path)
	items = append(items, unkeyedItems...)

	return items
}

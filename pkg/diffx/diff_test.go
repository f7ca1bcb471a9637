package diffx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Concrete end-to-end scenarios (spec.md §8, S1-S6) ---

func TestScenarioS1ScalarModify(t *testing.T) {
	old := NewMapping()
	old.Set("age", NewInteger(30))
	new := NewMapping()
	new.Set("age", NewInteger(31))

	diffs, err := Diff(old, new, nil)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffModified, diffs[0].Kind)
	assert.Equal(t, "age", diffs[0].Path)
	assert.Equal(t, int64(30), diffs[0].Old.Integer)
	assert.Equal(t, int64(31), diffs[0].New.Integer)
}

func TestScenarioS2TypeChange(t *testing.T) {
	old := NewMapping()
	old.Set("value", NewInteger(123))
	new := NewMapping()
	new.Set("value", NewString("123"))

	diffs, err := Diff(old, new, nil)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffTypeChanged, diffs[0].Kind)
	assert.Equal(t, "value", diffs[0].Path)
}

func TestScenarioS3EpsilonTolerance(t *testing.T) {
	old := NewMapping()
	old.Set("v", NewFloat(1.0))
	new := NewMapping()
	new.Set("v", NewFloat(1.001))

	diffs, err := Diff(old, new, &Options{Epsilon: 0.01})
	require.NoError(t, err)
	assert.Empty(t, diffs)

	diffs, err = Diff(old, new, &Options{Epsilon: 0.0001})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffModified, diffs[0].Kind)
	assert.Equal(t, "v", diffs[0].Path)
}

func TestScenarioS4KeyedSequenceAlignment(t *testing.T) {
	mk := func(id int64, n string) Value {
		m := NewMapping()
		m.Set("id", NewInteger(id))
		m.Set("n", NewString(n))
		return m
	}

	old := NewSequence(mk(1, "A"), mk(2, "B"))
	new := NewSequence(mk(2, "B"), mk(1, "A2"))

	diffs, err := Diff(old, new, &Options{ArrayIDKey: "id"})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffModified, diffs[0].Kind)
	assert.Equal(t, "[id=1].n", diffs[0].Path)
	assert.Equal(t, "A", diffs[0].Old.Str)
	assert.Equal(t, "A2", diffs[0].New.Str)
}

func TestScenarioS5AddedRemovedWithRegexFilter(t *testing.T) {
	old := NewMapping()
	old.Set("data", NewString("x"))
	old.Set("debug_a", NewInteger(1))
	new := NewMapping()
	new.Set("data", NewString("y"))
	new.Set("debug_a", NewInteger(2))

	diffs, err := Diff(old, new, &Options{IgnoreKeysRegex: "^debug_"})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffModified, diffs[0].Kind)
	assert.Equal(t, "data", diffs[0].Path)
}

func TestScenarioS6PathFilter(t *testing.T) {
	build := func(av, bv int64) Value {
		inner := NewMapping()
		inner.Set("v", NewInteger(av))
		outer := NewMapping()
		outer.Set("a", inner)
		b := NewMapping()
		b.Set("v", NewInteger(bv))
		outer.Set("b", b)
		return outer
	}

	old := build(1, 1)
	new := build(2, 2)

	diffs, err := Diff(old, new, &Options{PathFilter: "a."})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, "a.v", diffs[0].Path)
}

// Spec.md §8's eight quantified invariants (reflexivity, swap duality,
// epsilon monotonicity, key/path filter correctness, keyed-regime
// stability, determinism, idempotent normalisation) are property-tested
// with randomised inputs via gopter in diff_property_test.go, not as
// single hardcoded examples here.

// --- Additional structural/NaN coverage ---

func TestFloatNaNNeverEquivalent(t *testing.T) {
	old := NewMapping()
	old.Set("v", NewFloat(math.NaN()))
	new := NewMapping()
	new.Set("v", NewFloat(math.NaN()))

	diffs, err := Diff(old, new, &Options{})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffModified, diffs[0].Kind)
}

func TestSignedZeroFloatsEquivalent(t *testing.T) {
	old := NewMapping()
	old.Set("v", NewFloat(0.0))
	new := NewMapping()
	new.Set("v", NewFloat(math.Copysign(0, -1)))

	diffs, err := Diff(old, new, &Options{})
	require.NoError(t, err)
	assert.Empty(t, diffs)
}

func TestPositionalSequenceAddedRemoved(t *testing.T) {
	old := NewSequence(NewInteger(1), NewInteger(2))
	new := NewSequence(NewInteger(1), NewInteger(2), NewInteger(3))

	diffs, err := Diff(old, new, &Options{})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffAdded, diffs[0].Kind)
	assert.Equal(t, "[2]", diffs[0].Path)
}

func TestShowUnchangedEmitsEqualLeaves(t *testing.T) {
	old := NewMapping()
	old.Set("a", NewInteger(1))
	old.Set("b", NewInteger(2))
	new := NewMapping()
	new.Set("a", NewInteger(1))
	new.Set("b", NewInteger(99))

	diffs, err := Diff(old, new, &Options{ShowUnchanged: true})
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.Equal(t, DiffUnchanged, diffs[0].Kind)
	assert.Equal(t, "a", diffs[0].Path)
	assert.Equal(t, DiffModified, diffs[1].Kind)
}

func TestKeyedRegimeUnkeyedFallback(t *testing.T) {
	mk := func(id int64) Value {
		m := NewMapping()
		m.Set("id", NewInteger(id))
		return m
	}

	old := NewSequence(mk(1), NewString("loose-old"))
	new := NewSequence(mk(1), NewString("loose-new"))

	diffs, err := Diff(old, new, &Options{ArrayIDKey: "id"})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffModified, diffs[0].Kind)
	assert.Equal(t, "[0]", diffs[0].Path)
}

func TestInvalidEpsilonIsConfigError(t *testing.T) {
	_, err := Diff(Null, Null, &Options{Epsilon: -1})
	require.Error(t, err)
	var de *DiffError
	require.ErrorAs(t, err, &de)
}

func TestInvalidIgnoreKeysRegexIsConfigError(t *testing.T) {
	_, err := Diff(Null, Null, &Options{IgnoreKeysRegex: "("})
	require.Error(t, err)
}

func TestInvalidOutputFormatIsConfigError(t *testing.T) {
	_, err := Diff(Null, Null, &Options{OutputFormat: "xml-ish"})
	require.Error(t, err)
}

func TestDeepNestingDoesNotOverflow(t *testing.T) {
	depth := 5000
	old := NewInteger(0)
	new := NewInteger(1)
	for i := 0; i < depth; i++ {
		oldWrap := NewMapping()
		oldWrap.Set("child", old)
		newWrap := NewMapping()
		newWrap.Set("child", new)
		old, new = oldWrap, newWrap
	}

	diffs, err := Diff(old, new, &Options{})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	assert.Equal(t, DiffModified, diffs[0].Kind)
}

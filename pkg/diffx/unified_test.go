package diffx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUnifiedHeadersAndGrouping(t *testing.T) {
	diffs := []Difference{
		{Kind: DiffModified, Path: "a.x", Old: NewInteger(1), New: NewInteger(2)},
		{Kind: DiffAdded, Path: "b.y", Value: NewString("new")},
	}

	out := formatUnified(diffs, 0)
	assert.Contains(t, out, "--- old\n")
	assert.Contains(t, out, "+++ new\n")
	assert.Contains(t, out, "@@ a @@\n")
	assert.Contains(t, out, "@@ b @@\n")
	assert.Contains(t, out, "- a.x: 1\n")
	assert.Contains(t, out, "+ a.x: 2\n")
	assert.Contains(t, out, "+ b.y: new\n")
}

func TestFormatUnifiedEmptyInput(t *testing.T) {
	assert.Equal(t, "", formatUnified(nil, 3))
}

func TestFormatUnifiedContextLinesFromUnchanged(t *testing.T) {
	diffs := []Difference{
		{Kind: DiffUnchanged, Path: "a.w", Value: NewInteger(0)},
		{Kind: DiffModified, Path: "a.x", Old: NewInteger(1), New: NewInteger(2)},
		{Kind: DiffUnchanged, Path: "a.z", Value: NewInteger(9)},
		{Kind: DiffUnchanged, Path: "a.far", Value: NewInteger(100)},
	}

	out := formatUnified(diffs, 1)
	assert.Contains(t, out, "a.w: 0")
	assert.Contains(t, out, "a.z: 9")
	assert.NotContains(t, out, "a.far")
}

func TestFormatUnifiedSkipsGroupsWithNoChange(t *testing.T) {
	diffs := []Difference{
		{Kind: DiffUnchanged, Path: "a.w", Value: NewInteger(0)},
	}
	out := formatUnified(diffs, 2)
	assert.NotContains(t, out, "@@")
	assert.NotContains(t, out, "a.w")
}

func TestTopLevelKey(t *testing.T) {
	assert.Equal(t, "a", topLevelKey("a.b[2]"))
	assert.Equal(t, "users", topLevelKey("users[id=3].name"))
	assert.Equal(t, "flag", topLevelKey("flag"))
	assert.Equal(t, "(root)", topLevelKey(""))
}

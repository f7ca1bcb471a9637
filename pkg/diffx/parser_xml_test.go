package diffx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXMLLeafElementBecomesMappingWithText(t *testing.T) {
	v, err := ParseXML([]byte(`<name>Alice</name>`))
	require.NoError(t, err)
	require.Equal(t, KindMapping, v.Kind, "every element is a Mapping per SPEC_FULL.md §4.6, leaf included")

	text, ok := v.Get("#text")
	require.True(t, ok)
	assert.Equal(t, "Alice", text.Str)
}

func TestParseXMLEmptyLeafElementHasNoTextKey(t *testing.T) {
	v, err := ParseXML([]byte(`<empty></empty>`))
	require.NoError(t, err)
	require.Equal(t, KindMapping, v.Kind)

	_, ok := v.Get("#text")
	assert.False(t, ok, "whitespace-only/absent text is omitted rather than stored as an empty string")
}

func TestParseXMLAttributesUnderAttrsKey(t *testing.T) {
	v, err := ParseXML([]byte(`<user id="3">Alice</user>`))
	require.NoError(t, err)
	require.Equal(t, KindMapping, v.Kind)

	attrs, ok := v.Get("@attrs")
	require.True(t, ok)
	idv, _ := attrs.Get("id")
	assert.Equal(t, "3", idv.Str)

	text, ok := v.Get("#text")
	require.True(t, ok)
	assert.Equal(t, "Alice", text.Str)
}

func TestParseXMLRepeatedChildBecomesSequence(t *testing.T) {
	v, err := ParseXML([]byte(`<users><user>a</user><user>b</user></users>`))
	require.NoError(t, err)

	users, ok := v.Get("user")
	require.True(t, ok)
	require.Equal(t, KindSequence, users.Kind)
	require.Len(t, users.Seq, 2)

	t0, _ := users.Seq[0].Get("#text")
	assert.Equal(t, "a", t0.Str)
	t1, _ := users.Seq[1].Get("#text")
	assert.Equal(t, "b", t1.Str)
}

func TestParseXMLSingleChildStaysBareMapping(t *testing.T) {
	v, err := ParseXML([]byte(`<root><user>a</user></root>`))
	require.NoError(t, err)

	user, ok := v.Get("user")
	require.True(t, ok)
	require.Equal(t, KindMapping, user.Kind, "a single occurrence stays a bare Mapping, not wrapped in a one-element Sequence")

	text, _ := user.Get("#text")
	assert.Equal(t, "a", text.Str)
}

func TestParseXMLAddingChildToTextOnlyElementIsAddedNotTypeChanged(t *testing.T) {
	oldVal, err := ParseXML([]byte(`<name>Alice</name>`))
	require.NoError(t, err)
	newVal, err := ParseXML([]byte(`<name><nick>Al</nick></name>`))
	require.NoError(t, err)

	diffs, err := Diff(oldVal, newVal, nil)
	require.NoError(t, err)

	var kinds []DiffKind
	var paths []string
	for _, d := range diffs {
		kinds = append(kinds, d.Kind)
		paths = append(paths, d.Path)
	}
	assert.NotContains(t, kinds, DiffTypeChanged, "a Mapping-to-Mapping comparison must never surface TypeChanged")
	assert.Contains(t, paths, "nick")
	assert.Contains(t, paths, "#text")
}

func TestParseXMLInvalid(t *testing.T) {
	_, err := ParseXML([]byte(`<unclosed>`))
	require.Error(t, err)
}

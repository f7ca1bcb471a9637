package diffx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldString(t *testing.T) {
	tests := []struct {
		name             string
		s                string
		ignoreWhitespace bool
		ignoreCase       bool
		want             string
	}{
		{"no-op", "Hello World", false, false, "Hello World"},
		{"whitespace only", " H e l l o ", true, false, "Hello"},
		{"case only", "HELLO", false, true, "hello"},
		{"both", "  Hello\tWorld\n", true, true, "helloworld"},
		{"unicode whitespace", "a b", true, false, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foldString(tt.s, tt.ignoreWhitespace, tt.ignoreCase)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatsEquivalent(t *testing.T) {
	assert.True(t, floatsEquivalent(1.0, 1.0, 0))
	assert.False(t, floatsEquivalent(1.0, 1.0001, 0))
	assert.True(t, floatsEquivalent(1.0, 1.0001, 0.001))
	assert.True(t, floatsEquivalent(0.0, math.Copysign(0, -1), 0))
	assert.True(t, floatsEquivalent(math.Inf(1), math.Inf(1), 0))
	assert.False(t, floatsEquivalent(math.Inf(1), math.Inf(-1), 0))
	assert.False(t, floatsEquivalent(math.NaN(), math.NaN(), 0))
	assert.False(t, floatsEquivalent(math.NaN(), 1.0, 1.0))
}

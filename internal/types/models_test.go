package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawEventStr(t *testing.T) {
	r := RawEvent{
		"cat":     "  DRONE  ",
		"empty":   "   ",
		"number":  42,
		"summary": "text",
	}

	assert.Equal(t, "DRONE", r.Str("cat"))
	assert.Equal(t, "", r.Str("missing"))
	assert.Equal(t, "", r.Str("empty"), "whitespace-only counts as absent")
	assert.Equal(t, "", r.Str("number"), "wrong-typed values count as absent")
	assert.Equal(t, "text", r.Str("category", "summary"), "first non-empty key wins")
}

func TestRawEventNum(t *testing.T) {
	r := RawEvent{
		"float":  59.33,
		"int":    18,
		"string": " 17.93 ",
		"bad":    "north",
		"bool":   true,
	}

	v, ok := r.Num("float")
	assert.True(t, ok)
	assert.InDelta(t, 59.33, v, 1e-9)

	v, ok = r.Num("int")
	assert.True(t, ok)
	assert.InDelta(t, 18.0, v, 1e-9)

	v, ok = r.Num("string")
	assert.True(t, ok)
	assert.InDelta(t, 17.93, v, 1e-9)

	_, ok = r.Num("bad")
	assert.False(t, ok)
	_, ok = r.Num("bool")
	assert.False(t, ok)
	_, ok = r.Num("missing")
	assert.False(t, ok)
}

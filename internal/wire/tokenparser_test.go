package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenParser_NextString(t *testing.T) {
	tp := NewTokenParser("  alpha   beta\tgamma")
	tok, ok := tp.NextString()
	require.True(t, ok)
	assert.Equal(t, "alpha", tok)

	tok, ok = tp.NextString()
	require.True(t, ok)
	assert.Equal(t, "beta", tok)

	tok, ok = tp.NextString()
	require.True(t, ok)
	assert.Equal(t, "gamma", tok)

	_, ok = tp.NextString()
	assert.False(t, ok)
}

func TestTokenParser_Rest(t *testing.T) {
	tp := NewTokenParser("first rest of the line")
	_, _ = tp.NextString()
	rest, ok := tp.Rest()
	require.True(t, ok)
	assert.Equal(t, "rest of the line", rest)
}

func TestTokenParser_NextTXT_Unquoted(t *testing.T) {
	tp := NewTokenParser("hello world")
	segs := tp.NextTXT()
	require.Len(t, segs, 2)
	assert.Equal(t, "hello", string(segs[0]))
	assert.Equal(t, "world", string(segs[1]))
}

func TestTokenParser_NextTXT_Quoted(t *testing.T) {
	tp := NewTokenParser(`"hello world" "second segment"`)
	segs := tp.NextTXT()
	require.Len(t, segs, 2)
	assert.Equal(t, "hello world", string(segs[0]))
	assert.Equal(t, "second segment", string(segs[1]))
}

func TestTokenParser_NextTXT_EscapedQuote(t *testing.T) {
	tp := NewTokenParser(`"say \"hi\""`)
	segs := tp.NextTXT()
	require.Len(t, segs, 1)
	assert.Equal(t, `say \"hi\"`, string(segs[0]))
}

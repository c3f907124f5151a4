package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRender_CompressesRepeatedSuffix(t *testing.T) {
	r := NewMessageRender(64)
	first := mustName(t, "www.example.com.")
	second := mustName(t, "mail.example.com.")

	r.WriteName(first, true)
	posBeforeSecond := r.Len()
	r.WriteName(second, true)

	bytes := r.Bytes()
	// "mail" is written literally, then a pointer back to where
	// "example.com." was first recorded (offset 4, right after "www").
	assert.Equal(t, byte(4), bytes[posBeforeSecond])
	pointerPos := posBeforeSecond + 1 + 4
	assert.Equal(t, byte(0xC0), bytes[pointerPos]&0xC0)
}

func TestMessageRender_NoCompressionWritesLiteralEachTime(t *testing.T) {
	r := NewMessageRender(64)
	n := mustName(t, "www.example.com.")
	r.WriteName(n, false)
	r.WriteName(n, false)
	assert.Equal(t, 2*n.Length(), r.Len())
}

func TestMessageRender_RootNameIsBareTerminator(t *testing.T) {
	r := NewMessageRender(8)
	r.WriteName(RootName(), true)
	assert.Equal(t, []byte{0}, r.Bytes())
}

func TestMessageRender_SkipAndWriteU16At(t *testing.T) {
	r := NewMessageRender(8)
	pos := r.Skip(2)
	r.WriteU8(0xAB)
	r.WriteU16At(0x1234, pos)
	assert.Equal(t, []byte{0x12, 0x34, 0xAB}, r.Bytes())
}

func TestMessageRender_Reset_ClearsBufferAndDictionary(t *testing.T) {
	r := NewMessageRender(64)
	n := mustName(t, "www.example.com.")
	r.WriteName(n, true)
	require.NotZero(t, r.Len())

	r.Reset()
	assert.Equal(t, 0, r.Len())

	// A name written after Reset must not compress against dictionary
	// entries from before the reset.
	r.WriteName(n, true)
	assert.Equal(t, n.Length(), r.Len())
}

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputBuffer_SequentialReads(t *testing.T) {
	b := NewInputBuffer([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
	u8, err := b.ReadU8()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), u8)

	u16, err := b.ReadU16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), u16)

	u32, err := b.ReadU32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04050607), u32)

	assert.Equal(t, 0, b.Remaining())
}

func TestInputBuffer_ShortReadFails(t *testing.T) {
	b := NewInputBuffer([]byte{0x01})
	_, err := b.ReadU16()
	assert.ErrorIs(t, err, ErrIncompleteWire)
}

func TestInputBuffer_SetPositionOutOfRange(t *testing.T) {
	b := NewInputBuffer([]byte{0x01, 0x02})
	assert.ErrorIs(t, b.SetPosition(3), ErrIncompleteWire)
	assert.ErrorIs(t, b.SetPosition(-1), ErrIncompleteWire)
	require.NoError(t, b.SetPosition(2))
	assert.Equal(t, 0, b.Remaining())
}

func TestInputBuffer_ReadBytesAliasesUnderlyingData(t *testing.T) {
	data := []byte{0xAA, 0xBB, 0xCC}
	b := NewInputBuffer(data)
	got, err := b.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, got)
	data[0] = 0x11
	assert.Equal(t, byte(0x11), got[0])
}

func TestOutputBuffer_WritesAndBackpatch(t *testing.T) {
	o := NewOutputBuffer(4)
	o.WriteU8(0x01)
	pos := o.Skip(2)
	o.WriteU32(0xDEADBEEF)
	o.WriteU16At(0xBEEF, pos)
	assert.Equal(t, []byte{0x01, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF}, o.Bytes())
}

func TestOutputBuffer_Reset(t *testing.T) {
	o := NewOutputBuffer(4)
	o.WriteU8(1)
	o.WriteU8(2)
	o.Reset()
	assert.Equal(t, 0, o.Len())
	o.WriteU8(3)
	assert.Equal(t, []byte{3}, o.Bytes())
}

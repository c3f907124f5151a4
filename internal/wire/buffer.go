package wire

import (
	"encoding/binary"
	"fmt"
)

// InputBuffer is a positioned, bounds-checked reader over a borrowed byte
// slice. Every read advances the cursor and fails with ErrIncompleteWire
// when fewer than the requested bytes remain.
type InputBuffer struct {
	data []byte
	pos  int
}

// NewInputBuffer wraps msg for sequential, bounds-checked reads.
func NewInputBuffer(msg []byte) *InputBuffer {
	return &InputBuffer{data: msg}
}

// Len returns the total length of the underlying message.
func (b *InputBuffer) Len() int { return len(b.data) }

// Position returns the current read cursor.
func (b *InputBuffer) Position() int { return b.pos }

// SetPosition moves the cursor. It fails if pos would land past the end
// of the buffer.
func (b *InputBuffer) SetPosition(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return fmt.Errorf("set position %d: %w", pos, ErrIncompleteWire)
	}
	b.pos = pos
	return nil
}

// Remaining reports how many bytes are left to read.
func (b *InputBuffer) Remaining() int { return len(b.data) - b.pos }

func (b *InputBuffer) ReadU8() (byte, error) {
	if b.Remaining() < 1 {
		return 0, fmt.Errorf("read u8 at %d: %w", b.pos, ErrIncompleteWire)
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

func (b *InputBuffer) ReadU16() (uint16, error) {
	if b.Remaining() < 2 {
		return 0, fmt.Errorf("read u16 at %d: %w", b.pos, ErrIncompleteWire)
	}
	v := binary.BigEndian.Uint16(b.data[b.pos : b.pos+2])
	b.pos += 2
	return v, nil
}

func (b *InputBuffer) ReadU32() (uint32, error) {
	if b.Remaining() < 4 {
		return 0, fmt.Errorf("read u32 at %d: %w", b.pos, ErrIncompleteWire)
	}
	v := binary.BigEndian.Uint32(b.data[b.pos : b.pos+4])
	b.pos += 4
	return v, nil
}

// ReadBytes borrows the next n bytes without copying. The returned slice
// aliases the buffer's backing array and must not be retained past the
// buffer's lifetime if the caller later mutates it.
func (b *InputBuffer) ReadBytes(n int) ([]byte, error) {
	if n < 0 || b.Remaining() < n {
		return nil, fmt.Errorf("read %d bytes at %d: %w", n, b.pos, ErrIncompleteWire)
	}
	v := b.data[b.pos : b.pos+n]
	b.pos += n
	return v, nil
}

// PeekU8 reads the next byte without advancing the cursor.
func (b *InputBuffer) PeekU8() (byte, error) {
	if b.Remaining() < 1 {
		return 0, fmt.Errorf("peek u8 at %d: %w", b.pos, ErrIncompleteWire)
	}
	return b.data[b.pos], nil
}

// OutputBuffer is a growable byte buffer supporting big-endian writes and
// backpatching, used both for plain wire serialization and as the backing
// store for a MessageRender.
type OutputBuffer struct {
	buf []byte
}

// NewOutputBuffer returns an empty OutputBuffer with capacity hint.
func NewOutputBuffer(capHint int) *OutputBuffer {
	return &OutputBuffer{buf: make([]byte, 0, capHint)}
}

func (o *OutputBuffer) Len() int      { return len(o.buf) }
func (o *OutputBuffer) Data() []byte  { return o.buf }
func (o *OutputBuffer) Bytes() []byte { return o.buf }

func (o *OutputBuffer) WriteU8(v byte) {
	o.buf = append(o.buf, v)
}

func (o *OutputBuffer) WriteU16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	o.buf = append(o.buf, tmp[:]...)
}

func (o *OutputBuffer) WriteU32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	o.buf = append(o.buf, tmp[:]...)
}

func (o *OutputBuffer) WriteBytes(v []byte) {
	o.buf = append(o.buf, v...)
}

// Skip reserves n zero bytes, returning the offset at which they start so
// the caller can come back and overwrite them once the real value is known
// (used for rdlen backpatching).
func (o *OutputBuffer) Skip(n int) int {
	pos := len(o.buf)
	o.buf = append(o.buf, make([]byte, n)...)
	return pos
}

// WriteU16At overwrites two bytes previously reserved with Skip.
func (o *OutputBuffer) WriteU16At(v uint16, pos int) {
	binary.BigEndian.PutUint16(o.buf[pos:pos+2], v)
}

// Reset empties the buffer while keeping its backing array.
func (o *OutputBuffer) Reset() {
	o.buf = o.buf[:0]
}

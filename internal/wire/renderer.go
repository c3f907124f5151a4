package wire

// MessageRender wraps an OutputBuffer with a name-compression dictionary,
// mapping a case-folded trailing label sequence to the buffer offset where
// it was first written (RFC 1035 Section 4.1.4). Only offsets that fit in
// the 14-bit pointer field are ever recorded or followed.
type MessageRender struct {
	out  *OutputBuffer
	dict map[string]int
}

// NewMessageRender returns an empty MessageRender with capacity hint.
func NewMessageRender(capHint int) *MessageRender {
	return &MessageRender{out: NewOutputBuffer(capHint), dict: make(map[string]int)}
}

func (r *MessageRender) Len() int      { return r.out.Len() }
func (r *MessageRender) Bytes() []byte { return r.out.Bytes() }

// Reset empties the renderer's buffer and compression dictionary so it can
// be reused for another message, e.g. when pooled across requests.
func (r *MessageRender) Reset() {
	r.out.Reset()
	for k := range r.dict {
		delete(r.dict, k)
	}
}

func (r *MessageRender) WriteU8(v byte)       { r.out.WriteU8(v) }
func (r *MessageRender) WriteU16(v uint16)    { r.out.WriteU16(v) }
func (r *MessageRender) WriteU32(v uint32)    { r.out.WriteU32(v) }
func (r *MessageRender) WriteBytes(v []byte)  { r.out.WriteBytes(v) }
func (r *MessageRender) Skip(n int) int       { return r.out.Skip(n) }
func (r *MessageRender) WriteU16At(v uint16, pos int) {
	r.out.WriteU16At(v, pos)
}

// WriteName writes n to the underlying buffer. When compress is true it
// first looks for the longest trailing label sequence of n already present
// in the dictionary: any unmatched leading labels are written literally
// (and, as each is written, its own trailing sequence is recorded in the
// dictionary if not already present and its offset fits 14 bits), followed
// by a pointer to the matched suffix. If no suffix matches, the whole name
// is written literally, terminated by the root label, with the same
// per-label dictionary recording. The root name is always written as a
// bare terminator and never recorded, since it carries no information to
// compress.
func (r *MessageRender) WriteName(n Name, compress bool) {
	if n.IsRoot() {
		r.out.WriteU8(0)
		return
	}

	view := LabelViewFromName(n)
	lastLabel := n.LabelCount() - 1

	matchIdx := -1
	matchOffset := 0
	if compress {
		for i := 0; i < lastLabel; i++ {
			suffix := view
			suffix.StripLeft(i)
			if off, ok := r.dict[foldKey(suffix.Data())]; ok {
				matchIdx = i
				matchOffset = off
				break
			}
		}
	}

	end := lastLabel
	if matchIdx >= 0 {
		end = matchIdx
	}
	for i := 0; i < end; i++ {
		pos := r.out.Len()
		r.writeLabel(n, i)
		if compress && pos <= compressOffsetMask {
			suffix := view
			suffix.StripLeft(i)
			key := foldKey(suffix.Data())
			if _, exists := r.dict[key]; !exists {
				r.dict[key] = pos
			}
		}
	}

	if matchIdx >= 0 {
		r.writePointer(matchOffset)
	} else {
		r.out.WriteU8(0)
	}
}

func (r *MessageRender) writeLabel(n Name, labelIndex int) {
	pos := int(n.Offsets()[labelIndex])
	length := int(n.RawData()[pos])
	r.out.WriteBytes(n.RawData()[pos : pos+1+length])
}

func (r *MessageRender) writePointer(offset int) {
	r.out.WriteU16(uint16(compressPointerMask)<<8 | uint16(offset))
}

func foldKey(data []byte) string {
	buf := make([]byte, len(data))
	for i, b := range data {
		buf[i] = lowerCase(b)
	}
	return string(buf)
}

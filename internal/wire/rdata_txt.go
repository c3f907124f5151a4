package wire

import (
	"bytes"
	"fmt"
)

// TXTRecord is the RDATA of a TXT record: one or more length-prefixed
// character-strings, each up to 255 bytes (RFC 1035 Section 3.3.14).
type TXTRecord struct {
	Data [][]byte
}

func (r TXTRecord) Type() RRType { return TypeTXT }

func decodeTXTRecord(buf *InputBuffer, rdlen int) (RData, error) {
	var data [][]byte
	read := 0
	for read < rdlen {
		sl, err := buf.ReadU8()
		if err != nil {
			return nil, err
		}
		b, err := buf.ReadBytes(int(sl))
		if err != nil {
			return nil, err
		}
		cs := make([]byte, len(b))
		copy(cs, b)
		data = append(data, cs)
		read += int(sl) + 1
	}
	if read != rdlen {
		return nil, fmt.Errorf("TXT character-strings overran rdlength: %w", ErrRdataLenIsNotCorrect)
	}
	return TXTRecord{Data: data}, nil
}

func parseTXTRecordString(tp *TokenParser) (RData, error) {
	segments := tp.NextTXT()
	for _, s := range segments {
		if len(s) > 255 {
			return nil, fmt.Errorf("TXT character-string exceeds 255 bytes: %w", ErrTooLongLabel)
		}
	}
	return TXTRecord{Data: segments}, nil
}

func (r TXTRecord) Encode(out *MessageRender) { r.write(out.out) }
func (r TXTRecord) ToWire(out *OutputBuffer)  { r.write(out) }

func (r TXTRecord) write(out *OutputBuffer) {
	for _, cs := range r.Data {
		out.WriteU8(byte(len(cs)))
		out.WriteBytes(cs)
	}
}

func (r TXTRecord) String() string {
	var b bytes.Buffer
	for i, cs := range r.Data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('"')
		b.Write(cs)
		b.WriteByte('"')
	}
	return b.String()
}

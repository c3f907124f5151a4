package wire

// Header is the fixed 12-byte DNS message header (RFC 1035 Section 4.1.1).
type Header struct {
	ID      uint16
	Flags   uint16
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// HeaderSize is the wire size of a DNS header in bytes.
const HeaderSize = 12

// DecodeHeader reads a 12-byte header from buf.
func DecodeHeader(buf *InputBuffer) (Header, error) {
	id, err := buf.ReadU16()
	if err != nil {
		return Header{}, err
	}
	flags, err := buf.ReadU16()
	if err != nil {
		return Header{}, err
	}
	qd, err := buf.ReadU16()
	if err != nil {
		return Header{}, err
	}
	an, err := buf.ReadU16()
	if err != nil {
		return Header{}, err
	}
	ns, err := buf.ReadU16()
	if err != nil {
		return Header{}, err
	}
	ar, err := buf.ReadU16()
	if err != nil {
		return Header{}, err
	}
	return Header{ID: id, Flags: flags, QDCount: qd, ANCount: an, NSCount: ns, ARCount: ar}, nil
}

// Encode writes the header to r.
func (h Header) Encode(r *MessageRender) {
	r.WriteU16(h.ID)
	r.WriteU16(h.Flags)
	r.WriteU16(h.QDCount)
	r.WriteU16(h.ANCount)
	r.WriteU16(h.NSCount)
	r.WriteU16(h.ARCount)
}

// RCode returns the header's low-order response code.
func (h Header) RCode() RCode { return RCodeFromFlags(h.Flags) }

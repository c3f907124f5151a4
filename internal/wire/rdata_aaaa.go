package wire

import "net"

// AAAARecord is the RDATA of an AAAA record: a 16-byte IPv6 address
// (RFC 3596).
type AAAARecord struct {
	Addr net.IP
}

func (r AAAARecord) Type() RRType { return TypeAAAA }

func decodeAAAARecord(buf *InputBuffer, rdlen int) (RData, error) {
	if rdlen != 16 {
		return nil, errShortRData(TypeAAAA, 16, rdlen)
	}
	b, err := buf.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	addr := make(net.IP, 16)
	copy(addr, b)
	return AAAARecord{Addr: addr}, nil
}

func parseAAAARecordString(tp *TokenParser) (RData, error) {
	addr, err := nextIPv6Field("address", tp)
	if err != nil {
		return nil, err
	}
	return AAAARecord{Addr: addr}, nil
}

func (r AAAARecord) Encode(out *MessageRender) { out.WriteBytes(r.Addr.To16()) }
func (r AAAARecord) ToWire(out *OutputBuffer)  { out.WriteBytes(r.Addr.To16()) }
func (r AAAARecord) String() string            { return r.Addr.String() }

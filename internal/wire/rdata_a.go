package wire

import "net"

// ARecord is the RDATA of an A record: a 4-byte IPv4 address (RFC 1035
// Section 3.4.1).
type ARecord struct {
	Addr net.IP
}

func (r ARecord) Type() RRType { return TypeA }

func decodeARecord(buf *InputBuffer, rdlen int) (RData, error) {
	if rdlen != 4 {
		return nil, errShortRData(TypeA, 4, rdlen)
	}
	b, err := buf.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	addr := make(net.IP, 4)
	copy(addr, b)
	return ARecord{Addr: addr}, nil
}

func parseARecordString(tp *TokenParser) (RData, error) {
	addr, err := nextIPv4Field("address", tp)
	if err != nil {
		return nil, err
	}
	return ARecord{Addr: addr}, nil
}

func (r ARecord) Encode(out *MessageRender) { out.WriteBytes(r.Addr.To4()) }
func (r ARecord) ToWire(out *OutputBuffer)  { out.WriteBytes(r.Addr.To4()) }
func (r ARecord) String() string            { return r.Addr.String() }

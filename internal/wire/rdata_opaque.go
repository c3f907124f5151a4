package wire

import "encoding/hex"

// OpaqueRData is the RDATA fallback for record types this package does not
// interpret structurally (including, notably, OPT: its RDATA is a run of
// EDNS options handled separately by edns.go, not through the RData
// interface).
type OpaqueRData struct {
	RRType RRType
	Data   []byte
}

func (r OpaqueRData) Type() RRType { return r.RRType }

func decodeOpaqueRData(typ RRType, buf *InputBuffer, rdlen int) (RData, error) {
	b, err := buf.ReadBytes(rdlen)
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(b))
	copy(data, b)
	return OpaqueRData{RRType: typ, Data: data}, nil
}

func parseOpaqueRDataString(typ RRType, tp *TokenParser) (RData, error) {
	data, err := nextHexField("data", tp)
	if err != nil {
		return nil, err
	}
	return OpaqueRData{RRType: typ, Data: data}, nil
}

func (r OpaqueRData) Encode(out *MessageRender) { out.WriteBytes(r.Data) }
func (r OpaqueRData) ToWire(out *OutputBuffer)  { out.WriteBytes(r.Data) }
func (r OpaqueRData) String() string            { return hex.EncodeToString(r.Data) }

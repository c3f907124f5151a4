package wire

// NameRData is the RDATA shared by NS, CNAME, and PTR records, each of
// which is a single domain name (RFC 1035 Section 3.3).
type NameRData struct {
	RRType RRType
	Name   Name
}

func (r NameRData) Type() RRType { return r.RRType }

func decodeNameRData(typ RRType, buf *InputBuffer) (RData, error) {
	n, err := DecodeName(buf)
	if err != nil {
		return nil, err
	}
	return NameRData{RRType: typ, Name: n}, nil
}

func parseNameRDataString(typ RRType, tp *TokenParser) (RData, error) {
	n, err := nextNameField("name", tp)
	if err != nil {
		return nil, err
	}
	return NameRData{RRType: typ, Name: n}, nil
}

func (r NameRData) Encode(out *MessageRender) { out.WriteName(r.Name, true) }
func (r NameRData) ToWire(out *OutputBuffer)  { r.Name.WriteWire(out) }
func (r NameRData) String() string            { return r.Name.String() }

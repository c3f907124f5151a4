package wire

import "strconv"

// MXRecord is the RDATA of an MX record: a preference value and a mail
// exchange host name (RFC 1035 Section 3.3.9).
type MXRecord struct {
	Preference uint16
	Exchange   Name
}

func (r MXRecord) Type() RRType { return TypeMX }

func decodeMXRecord(buf *InputBuffer) (RData, error) {
	pref, err := buf.ReadU16()
	if err != nil {
		return nil, err
	}
	ex, err := DecodeName(buf)
	if err != nil {
		return nil, err
	}
	return MXRecord{Preference: pref, Exchange: ex}, nil
}

func parseMXRecordString(tp *TokenParser) (RData, error) {
	pref, err := nextU16Field("preference", tp)
	if err != nil {
		return nil, err
	}
	ex, err := nextNameField("exchange", tp)
	if err != nil {
		return nil, err
	}
	return MXRecord{Preference: pref, Exchange: ex}, nil
}

func (r MXRecord) Encode(out *MessageRender) {
	out.WriteU16(r.Preference)
	out.WriteName(r.Exchange, true)
}

func (r MXRecord) ToWire(out *OutputBuffer) {
	out.WriteU16(r.Preference)
	r.Exchange.WriteWire(out)
}

func (r MXRecord) String() string {
	return strconv.Itoa(int(r.Preference)) + " " + r.Exchange.String()
}

package wire

import (
	"fmt"
	"strconv"
)

// NAPTRRecord is the RDATA of a NAPTR record (RFC 3403): order and
// preference values, three character-string fields, and a replacement
// name. Flags, services, and regexp are carried as opaque character
// strings since nothing in this package interprets them.
type NAPTRRecord struct {
	Order       uint16
	Preference  uint16
	Flags       []byte
	Services    []byte
	Regexp      []byte
	Replacement Name
}

func (r NAPTRRecord) Type() RRType { return TypeNAPTR }

func decodeNAPTRRecord(buf *InputBuffer) (RData, error) {
	order, err := buf.ReadU16()
	if err != nil {
		return nil, err
	}
	pref, err := buf.ReadU16()
	if err != nil {
		return nil, err
	}
	flags, err := readCharString(buf)
	if err != nil {
		return nil, err
	}
	services, err := readCharString(buf)
	if err != nil {
		return nil, err
	}
	regexp, err := readCharString(buf)
	if err != nil {
		return nil, err
	}
	replacement, err := DecodeName(buf)
	if err != nil {
		return nil, err
	}
	return NAPTRRecord{
		Order:       order,
		Preference:  pref,
		Flags:       flags,
		Services:    services,
		Regexp:      regexp,
		Replacement: replacement,
	}, nil
}

func readCharString(buf *InputBuffer) ([]byte, error) {
	n, err := buf.ReadU8()
	if err != nil {
		return nil, err
	}
	b, err := buf.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func writeCharString(out *OutputBuffer, s []byte) {
	out.WriteU8(byte(len(s)))
	out.WriteBytes(s)
}

func parseNAPTRRecordString(tp *TokenParser) (RData, error) {
	order, err := nextU16Field("order", tp)
	if err != nil {
		return nil, err
	}
	pref, err := nextU16Field("preference", tp)
	if err != nil {
		return nil, err
	}
	flags, ok := tp.NextString()
	if !ok {
		return nil, fmt.Errorf("flags is missing: %w", ErrRdataLenIsNotCorrect)
	}
	services, ok := tp.NextString()
	if !ok {
		return nil, fmt.Errorf("services is missing: %w", ErrRdataLenIsNotCorrect)
	}
	regexp, ok := tp.NextString()
	if !ok {
		return nil, fmt.Errorf("regexp is missing: %w", ErrRdataLenIsNotCorrect)
	}
	replacement, err := nextNameField("replacement", tp)
	if err != nil {
		return nil, err
	}
	return NAPTRRecord{
		Order:       order,
		Preference:  pref,
		Flags:       []byte(flags),
		Services:    []byte(services),
		Regexp:      []byte(regexp),
		Replacement: replacement,
	}, nil
}

func (r NAPTRRecord) Encode(out *MessageRender) { r.writeFixed(out.out); out.WriteName(r.Replacement, true) }
func (r NAPTRRecord) ToWire(out *OutputBuffer) {
	r.writeFixed(out)
	r.Replacement.WriteWire(out)
}

func (r NAPTRRecord) writeFixed(out *OutputBuffer) {
	out.WriteU16(r.Order)
	out.WriteU16(r.Preference)
	writeCharString(out, r.Flags)
	writeCharString(out, r.Services)
	writeCharString(out, r.Regexp)
}

func (r NAPTRRecord) String() string {
	return strconv.Itoa(int(r.Order)) + " " + strconv.Itoa(int(r.Preference)) + " " +
		string(r.Flags) + " " + string(r.Services) + " " + string(r.Regexp) + " " + r.Replacement.String()
}

package wire

import "fmt"

// RData is the per-type resource-record data payload. Each concrete
// variant (ARecord, AAAARecord, NameRData for NS/CNAME/PTR, MXRecord,
// TXTRecord, NAPTRRecord, OpaqueRData as the fallback for OPT and unknown
// types) implements encode/decode in both wire and presentation form.
type RData interface {
	Type() RRType
	// Encode writes the RDATA through a MessageRender, so name-valued
	// fields (NS, CNAME, PTR, MX, NAPTR) can participate in message
	// compression.
	Encode(r *MessageRender)
	// ToWire writes the RDATA without compression, for contexts with no
	// compression dictionary (e.g. a standalone record).
	ToWire(out *OutputBuffer)
	String() string
}

// DecodeRData dispatches on typ to decode rdlen bytes of RDATA from buf.
func DecodeRData(typ RRType, buf *InputBuffer, rdlen int) (RData, error) {
	switch typ {
	case TypeA:
		return decodeARecord(buf, rdlen)
	case TypeAAAA:
		return decodeAAAARecord(buf, rdlen)
	case TypeNS, TypeCNAME, TypePTR:
		return decodeNameRData(typ, buf)
	case TypeMX:
		return decodeMXRecord(buf)
	case TypeTXT:
		return decodeTXTRecord(buf, rdlen)
	case TypeNAPTR:
		return decodeNAPTRRecord(buf)
	default:
		return decodeOpaqueRData(typ, buf, rdlen)
	}
}

// ParseRDataString dispatches on typ to parse RDATA from its presentation
// (master-file) form.
func ParseRDataString(typ RRType, tp *TokenParser) (RData, error) {
	switch typ {
	case TypeA:
		return parseARecordString(tp)
	case TypeAAAA:
		return parseAAAARecordString(tp)
	case TypeNS, TypeCNAME, TypePTR:
		return parseNameRDataString(typ, tp)
	case TypeMX:
		return parseMXRecordString(tp)
	case TypeTXT:
		return parseTXTRecordString(tp)
	case TypeNAPTR:
		return parseNAPTRRecordString(tp)
	default:
		return parseOpaqueRDataString(typ, tp)
	}
}

func errShortRData(typ RRType, want, got int) error {
	return fmt.Errorf("%s rdata expects %d bytes, got %d: %w", typ, want, got, ErrRdataLenIsNotCorrect)
}

package wire

import (
	"fmt"

	"github.com/jroosing/wiredns/internal/helpers"
)

// EDNS UDP payload size bounds (RFC 6891).
const (
	DefaultUDPPayloadSize     = 512  // traditional, non-EDNS UDP limit (RFC 1035)
	EDNSMinUDPPayloadSize     = 512
	EDNSDefaultUDPPayloadSize = 1232 // safe size avoiding IP fragmentation
	EDNSMaxUDPPayloadSize     = 4096
)

// EDNSOption is one (code, length, data) entry of an OPT record's RDATA
// (RFC 6891 Section 6.1.2).
type EDNSOption struct {
	Code uint16
	Data []byte
}

// EDNS is the parsed form of a message's OPT pseudo-record. Unlike an
// ordinary RRset, its class field carries the sender's UDP payload size
// and its TTL field is bit-packed with the extended RCODE, version, and
// DO flag rather than a cache lifetime (RFC 6891 Section 6.1.3).
type EDNS struct {
	UDPPayloadSize uint16
	ExtendedRCode  uint8
	Version        uint8
	DNSSECOk       bool
	Options        []EDNSOption
}

// NewEDNS returns an EDNS advertising the given UDP payload size, clamped
// to [EDNSMinUDPPayloadSize, 65535].
func NewEDNS(udpPayloadSize int) EDNS {
	sz := helpers.ClampInt(udpPayloadSize, EDNSMinUDPPayloadSize, 65535)
	return EDNS{UDPPayloadSize: helpers.ClampIntToUint16(sz)}
}

func (e EDNS) packedTTL() uint32 {
	ttl := uint32(e.ExtendedRCode)<<24 | uint32(e.Version)<<16
	if e.DNSSECOk {
		ttl |= 1 << 15
	}
	return ttl
}

func encodeEDNSOptions(out *OutputBuffer, opts []EDNSOption) {
	for _, o := range opts {
		out.WriteU16(o.Code)
		out.WriteU16(helpers.ClampIntToUint16(len(o.Data)))
		out.WriteBytes(o.Data)
	}
}

func decodeEDNSOptions(data []byte) ([]EDNSOption, error) {
	buf := NewInputBuffer(data)
	var opts []EDNSOption
	for buf.Remaining() > 0 {
		code, err := buf.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("truncated edns option code: %w", err)
		}
		ln, err := buf.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("truncated edns option length: %w", err)
		}
		raw, err := buf.ReadBytes(int(ln))
		if err != nil {
			return nil, fmt.Errorf("truncated edns option data: %w", err)
		}
		cp := make([]byte, len(raw))
		copy(cp, raw)
		opts = append(opts, EDNSOption{Code: code, Data: cp})
	}
	return opts, nil
}

// ToRRset renders e as the RRset an additional section carries it in: a
// root-named OPT record whose class is the UDP payload size and whose
// rdata is the concatenated options.
func (e EDNS) ToRRset() RRset {
	ob := NewOutputBuffer(16)
	encodeEDNSOptions(ob, e.Options)
	return RRset{
		Name:   RootName(),
		Type:   TypeOPT,
		Class:  RRClass(e.UDPPayloadSize),
		TTL:    RRTtl(e.packedTTL()),
		Rdatas: []RData{OpaqueRData{RRType: TypeOPT, Data: ob.Bytes()}},
	}
}

// ExtractEDNS finds and parses the OPT record in additional, if any.
// Returns nil, nil if no OPT record is present.
func ExtractEDNS(additional Section) (*EDNS, error) {
	for _, rrset := range additional {
		if rrset.Type != TypeOPT {
			continue
		}
		var raw []byte
		if len(rrset.Rdatas) > 0 {
			if opaque, ok := rrset.Rdatas[0].(OpaqueRData); ok {
				raw = opaque.Data
			}
		}
		opts, err := decodeEDNSOptions(raw)
		if err != nil {
			return nil, err
		}
		ttl := uint32(rrset.TTL)
		e := &EDNS{
			UDPPayloadSize: uint16(rrset.Class),
			ExtendedRCode:  uint8((ttl >> 24) & 0xFF),
			Version:        uint8((ttl >> 16) & 0xFF),
			DNSSECOk:       (ttl>>15)&0x1 == 1,
			Options:        opts,
		}
		return e, nil
	}
	return nil, nil
}

// ClientMaxUDPSize returns the maximum UDP response size a question's
// EDNS record (if any) advertises, or DefaultUDPPayloadSize otherwise.
func ClientMaxUDPSize(question *EDNS) int {
	if question == nil {
		return DefaultUDPPayloadSize
	}
	if question.UDPPayloadSize < DefaultUDPPayloadSize {
		return DefaultUDPPayloadSize
	}
	return int(question.UDPPayloadSize)
}

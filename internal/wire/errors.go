// Package wire implements DNS domain name and message encoding, decoding,
// comparison, and manipulation on the wire (RFC 1035, RFC 3596, RFC 6891).
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (core DNS protocol)
//   - RFC 1034: Domain Names - Concepts and Facilities (DNS concepts)
//   - RFC 3596: DNS Extensions to Support IPv6 (AAAA records)
//   - RFC 6891: Extension Mechanisms for DNS (EDNS, OPT records)
//
// Error Handling:
//
// Every failure mode is a package-level sentinel error wrapped with
// fmt.Errorf("context: %w", sentinel) at the point of detection. Callers
// match with errors.Is against the sentinels below, never by string.
package wire

import "errors"

// Sentinel errors, one per row of the wire-format error taxonomy.
var (
	ErrIncompleteWire        = errors.New("wire: buffer read past end")
	ErrTooLongName           = errors.New("wire: name exceeds 255 bytes")
	ErrTooLongLabel          = errors.New("wire: label exceeds 63 bytes or label count exceeds 128")
	ErrInvalidDecimalFormat  = errors.New("wire: \\DDD escape is not three digits 0-255")
	ErrNoneTerminateLabel    = errors.New("wire: stray period not at end of name")
	ErrDuplicatePeriod       = errors.New("wire: empty label between periods")
	ErrUnknownRRType         = errors.New("wire: unknown resource record type")
	ErrInvalidLabelCharacter = errors.New("wire: invalid label character or reserved label type")
	ErrBadCompressPointer    = errors.New("wire: compression pointer targets a non-earlier offset")
	ErrIncompleteName        = errors.New("wire: name has no terminating root label")
	ErrRdataLenIsNotCorrect  = errors.New("wire: rdata decoder consumed a different length than rdlen")
	ErrInvalidIPv4Address    = errors.New("wire: invalid IPv4 address")
	ErrShortOfQuestion       = errors.New("wire: message does not have exactly one question")
	ErrInvalidLabelIndex     = errors.New("wire: label index out of range")
)

package wire

import (
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
)

// The NextXField helpers pull one whitespace-delimited token at a time off
// a TokenParser and convert it to the type an RDATA presentation-form
// field needs. A missing token or a malformed numeric, hex or IPv6 field is
// reported as ErrRdataLenIsNotCorrect wrapped with the field name; a bad
// name field wraps the error from NewName and a bad IPv4 field wraps
// ErrInvalidIPv4Address. They mirror the shared field-parsing helpers resource records
// are built from across rdata_*.go.

func nextNameField(field string, tp *TokenParser) (Name, error) {
	tok, ok := tp.NextString()
	if !ok {
		return Name{}, fmt.Errorf("%s is missing: %w", field, ErrRdataLenIsNotCorrect)
	}
	n, err := NewName(tok)
	if err != nil {
		return Name{}, fmt.Errorf("%s is not valid: %w", field, err)
	}
	return n, nil
}

func nextHexField(field string, tp *TokenParser) ([]byte, error) {
	tok, ok := tp.NextString()
	if !ok {
		return nil, fmt.Errorf("%s is missing: %w", field, ErrRdataLenIsNotCorrect)
	}
	data, err := hex.DecodeString(tok)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid hex: %w", field, ErrRdataLenIsNotCorrect)
	}
	return data, nil
}

func nextU16Field(field string, tp *TokenParser) (uint16, error) {
	tok, ok := tp.NextString()
	if !ok {
		return 0, fmt.Errorf("%s is missing: %w", field, ErrRdataLenIsNotCorrect)
	}
	v, err := strconv.ParseUint(tok, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%s is not valid: %w", field, ErrRdataLenIsNotCorrect)
	}
	return uint16(v), nil
}

func nextU32Field(field string, tp *TokenParser) (uint32, error) {
	tok, ok := tp.NextString()
	if !ok {
		return 0, fmt.Errorf("%s is missing: %w", field, ErrRdataLenIsNotCorrect)
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s is not valid: %w", field, ErrRdataLenIsNotCorrect)
	}
	return uint32(v), nil
}

func nextIPv4Field(field string, tp *TokenParser) (net.IP, error) {
	tok, ok := tp.NextString()
	if !ok {
		return nil, fmt.Errorf("%s is missing: %w", field, ErrRdataLenIsNotCorrect)
	}
	ip := net.ParseIP(tok).To4()
	if ip == nil {
		return nil, fmt.Errorf("%s is not a valid IPv4 address: %w", field, ErrInvalidIPv4Address)
	}
	return ip, nil
}

func nextIPv6Field(field string, tp *TokenParser) (net.IP, error) {
	tok, ok := tp.NextString()
	if !ok {
		return nil, fmt.Errorf("%s is missing: %w", field, ErrRdataLenIsNotCorrect)
	}
	ip := net.ParseIP(tok)
	if ip == nil || ip.To4() != nil {
		return nil, fmt.Errorf("%s is not a valid IPv6 address: %w", field, ErrRdataLenIsNotCorrect)
	}
	return ip, nil
}

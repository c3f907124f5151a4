package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeRData(r RData) []byte {
	out := NewOutputBuffer(64)
	r.ToWire(out)
	return out.Bytes()
}

func TestARecord_WireRoundTrip(t *testing.T) {
	rdata, err := parseARecordString(NewTokenParser("192.0.2.1"))
	require.NoError(t, err)
	wire := encodeRData(rdata)
	assert.Equal(t, []byte{192, 0, 2, 1}, wire)

	decoded, err := DecodeRData(TypeA, NewInputBuffer(wire), len(wire))
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.1", decoded.String())
}

func TestARecord_WrongLength(t *testing.T) {
	_, err := DecodeRData(TypeA, NewInputBuffer([]byte{1, 2, 3}), 3)
	assert.ErrorIs(t, err, ErrRdataLenIsNotCorrect)
}

func TestAAAARecord_WireRoundTrip(t *testing.T) {
	rdata, err := parseAAAARecordString(NewTokenParser("2001:db8::1"))
	require.NoError(t, err)
	wire := encodeRData(rdata)
	assert.Len(t, wire, 16)

	decoded, err := DecodeRData(TypeAAAA, NewInputBuffer(wire), len(wire))
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1", decoded.String())
}

func TestNameRData_WireRoundTrip(t *testing.T) {
	n := mustName(t, "ns1.example.com.")
	rdata := NameRData{RRType: TypeNS, Name: n}
	wire := encodeRData(rdata)

	decoded, err := DecodeRData(TypeNS, NewInputBuffer(wire), len(wire))
	require.NoError(t, err)
	nameData, ok := decoded.(NameRData)
	require.True(t, ok)
	assert.True(t, n.Equals(nameData.Name))
}

func TestMXRecord_WireRoundTrip(t *testing.T) {
	tp := NewTokenParser("10 mail.example.com.")
	rdata, err := parseMXRecordString(tp)
	require.NoError(t, err)
	wire := encodeRData(rdata)

	decoded, err := DecodeRData(TypeMX, NewInputBuffer(wire), len(wire))
	require.NoError(t, err)
	mx, ok := decoded.(MXRecord)
	require.True(t, ok)
	assert.Equal(t, uint16(10), mx.Preference)
	assert.Equal(t, "mail.example.com.", mx.Exchange.String())
}

func TestTXTRecord_MultipleStringsRoundTrip(t *testing.T) {
	rdata := TXTRecord{Data: [][]byte{[]byte("hello"), []byte("world")}}
	wire := encodeRData(rdata)
	assert.Equal(t, byte(5), wire[0])

	decoded, err := DecodeRData(TypeTXT, NewInputBuffer(wire), len(wire))
	require.NoError(t, err)
	txt, ok := decoded.(TXTRecord)
	require.True(t, ok)
	require.Len(t, txt.Data, 2)
	assert.Equal(t, "hello", string(txt.Data[0]))
	assert.Equal(t, "world", string(txt.Data[1]))
}

func TestTXTRecord_QuotedParse(t *testing.T) {
	tp := NewTokenParser(`"hello world" "second"`)
	rdata, err := parseTXTRecordString(tp)
	require.NoError(t, err)
	txt := rdata.(TXTRecord)
	require.Len(t, txt.Data, 2)
	assert.Equal(t, "hello world", string(txt.Data[0]))
	assert.Equal(t, "second", string(txt.Data[1]))
}

func TestNAPTRRecord_WireRoundTrip(t *testing.T) {
	tp := NewTokenParser(`100 10 u E2U+sip !^.*$!sip:info@example.com! .`)
	rdata, err := parseNAPTRRecordString(tp)
	require.NoError(t, err)
	wire := encodeRData(rdata)

	decoded, err := DecodeRData(TypeNAPTR, NewInputBuffer(wire), len(wire))
	require.NoError(t, err)
	naptr, ok := decoded.(NAPTRRecord)
	require.True(t, ok)
	assert.Equal(t, uint16(100), naptr.Order)
	assert.Equal(t, uint16(10), naptr.Preference)
	assert.Equal(t, "u", string(naptr.Flags))
	assert.Equal(t, "E2U+sip", string(naptr.Services))
	assert.True(t, naptr.Replacement.IsRoot())
}

func TestNAPTRRecord_MissingField(t *testing.T) {
	tp := NewTokenParser("100 10")
	_, err := parseNAPTRRecordString(tp)
	assert.ErrorIs(t, err, ErrRdataLenIsNotCorrect)
}

func TestOpaqueRData_UnknownType(t *testing.T) {
	const typeUnknown RRType = 9999
	decoded, err := DecodeRData(typeUnknown, NewInputBuffer([]byte{1, 2, 3, 4}), 4)
	require.NoError(t, err)
	opaque, ok := decoded.(OpaqueRData)
	require.True(t, ok)
	assert.Equal(t, "01020304", opaque.String())
}

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEDNS_ClampsPayloadSize(t *testing.T) {
	e := NewEDNS(100)
	assert.Equal(t, uint16(EDNSMinUDPPayloadSize), e.UDPPayloadSize)

	e = NewEDNS(EDNSDefaultUDPPayloadSize)
	assert.Equal(t, uint16(EDNSDefaultUDPPayloadSize), e.UDPPayloadSize)
}

func TestEDNS_RRsetRoundTrip(t *testing.T) {
	e := EDNS{
		UDPPayloadSize: 4096,
		ExtendedRCode:  0x12,
		Version:        1,
		DNSSECOk:       true,
		Options:        []EDNSOption{{Code: 8, Data: []byte{0x00, 0x01}}},
	}
	rrset := e.ToRRset()
	assert.True(t, rrset.Name.IsRoot())
	assert.Equal(t, TypeOPT, rrset.Type)
	assert.Equal(t, RRClass(4096), rrset.Class)

	sec := Section{rrset}
	back, err := ExtractEDNS(sec)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, e.UDPPayloadSize, back.UDPPayloadSize)
	assert.Equal(t, e.ExtendedRCode, back.ExtendedRCode)
	assert.Equal(t, e.Version, back.Version)
	assert.True(t, back.DNSSECOk)
	require.Len(t, back.Options, 1)
	assert.Equal(t, uint16(8), back.Options[0].Code)
	assert.Equal(t, []byte{0x00, 0x01}, back.Options[0].Data)
}

func TestExtractEDNS_NoOPTRecord(t *testing.T) {
	sec := Section{{Name: mustName(t, "example.com."), Type: TypeA, Class: ClassIN}}
	edns, err := ExtractEDNS(sec)
	require.NoError(t, err)
	assert.Nil(t, edns)
}

func TestClientMaxUDPSize(t *testing.T) {
	assert.Equal(t, DefaultUDPPayloadSize, ClientMaxUDPSize(nil))

	small := NewEDNS(10)
	assert.Equal(t, DefaultUDPPayloadSize, ClientMaxUDPSize(&small))

	large := NewEDNS(4096)
	assert.Equal(t, 4096, ClientMaxUDPSize(&large))
}

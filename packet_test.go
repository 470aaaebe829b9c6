// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rawPacket = []byte{ //nolint:gochecknoglobals
	0x80, 0xe0, 0x69, 0x8f, 0xd9, 0xc2, 0x93, 0xda,
	0x1c, 0x64, 0x27, 0x82, 0x98, 0x36, 0xbe, 0x88, 0x9e,
}

func parsedPacket() Packet {
	return Packet{
		Header: Header{
			Version:        2,
			Marker:         true,
			PayloadType:    96,
			SequenceNumber: 27023,
			Timestamp:      3653407706,
			SSRC:           476325762,
		},
		Payload: []byte{0x98, 0x36, 0xbe, 0x88, 0x9e},
	}
}

func TestPacketUnmarshal(t *testing.T) {
	var packet Packet
	require.NoError(t, packet.Unmarshal(rawPacket))
	assert.Equal(t, parsedPacket(), packet)
}

func TestPacketUnmarshalTooShort(t *testing.T) {
	var packet Packet
	assert.Error(t, packet.Unmarshal(rawPacket[:3]))
}

func TestPacketUnmarshalWrongVersion(t *testing.T) {
	bad := append([]byte(nil), rawPacket...)
	bad[0] &^= 0xC0

	var packet Packet
	err := packet.Unmarshal(bad)
	require.Error(t, err)

	var versionErr *InvalidVersionError
	assert.ErrorAs(t, err, &versionErr)
}

func TestPacketRoundTrip(t *testing.T) {
	marshaled, err := parsedPacket().Marshal()
	require.NoError(t, err)
	assert.Equal(t, rawPacket, marshaled)
}

func TestPacketMarshalSize(t *testing.T) {
	packet := parsedPacket()
	assert.Equal(t, len(rawPacket), packet.MarshalSize())
}

func TestPacketCSRC(t *testing.T) {
	packet := parsedPacket()
	packet.CSRC = []uint32{0x11111111, 0x22222222}

	raw, err := packet.Marshal()
	require.NoError(t, err)

	var roundTripped Packet
	require.NoError(t, roundTripped.Unmarshal(raw))
	assert.Equal(t, packet.CSRC, roundTripped.CSRC)
}

func TestPacketExtension(t *testing.T) {
	packet := parsedPacket()
	packet.Extension = true
	packet.ExtensionProfile = 0xBEDE
	packet.ExtensionPayload = []byte{0x51, 0x00, 0x00, 0x00}

	raw, err := packet.Marshal()
	require.NoError(t, err)

	var roundTripped Packet
	require.NoError(t, roundTripped.Unmarshal(raw))
	assert.Equal(t, packet, roundTripped)
}

func TestPacketExtensionNotAligned(t *testing.T) {
	packet := parsedPacket()
	packet.Extension = true
	packet.ExtensionProfile = 0xBEDE
	packet.ExtensionPayload = []byte{0x51, 0x00, 0x00}

	_, err := packet.Marshal()
	require.Error(t, err)

	var extErr *InvalidHeaderExtensionError
	assert.ErrorAs(t, err, &extErr)
}

func TestPacketClone(t *testing.T) {
	packet := parsedPacket()
	packet.CSRC = []uint32{1, 2, 3}

	clone := packet.Clone()
	assert.Equal(t, packet, clone)

	clone.CSRC[0] = 0xFFFFFFFF
	assert.NotEqual(t, packet.CSRC[0], clone.CSRC[0])
}

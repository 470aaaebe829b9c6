// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtp

import (
	"testing"

	"github.com/rtpweave/rtp/codecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketizerG722Seed(t *testing.T) {
	packetizer := NewPacketizer(100, PayloadG722, 0x1234ABCD, &codecs.G722Payloader{}, NewFixedSequencer(1234))

	frame := make([]byte, 128)
	packets := packetizer.Packetize(frame, 960)
	require.Len(t, packets, 2)

	assert.Equal(t, 88, len(packets[0].Payload))
	assert.Equal(t, 40, len(packets[1].Payload))

	assert.False(t, packets[0].Marker)
	assert.True(t, packets[1].Marker)

	assert.Equal(t, uint16(1234), packets[0].SequenceNumber)
	assert.Equal(t, uint16(1235), packets[1].SequenceNumber)

	for _, p := range packets {
		assert.Equal(t, uint8(PayloadG722), p.PayloadType)
		assert.Equal(t, uint32(0x1234ABCD), p.SSRC)
		assert.Equal(t, uint8(2), p.Version)
	}
}

func TestPacketizerEmptyFrame(t *testing.T) {
	packetizer := NewPacketizer(100, PayloadPCMU, 1, &codecs.G711Payloader{}, NewFixedSequencer(1))
	assert.Nil(t, packetizer.Packetize(nil, 160))
}

func TestPacketizerMTUTooSmall(t *testing.T) {
	packetizer := NewPacketizer(12, PayloadPCMU, 1, &codecs.G711Payloader{}, NewFixedSequencer(1))
	assert.Nil(t, packetizer.Packetize([]byte{0x01}, 160))
}

func TestPacketizerTimestampAdvancesOnce(t *testing.T) {
	packetizer := NewPacketizer(40, PayloadPCMU, 1, &codecs.G711Payloader{}, NewFixedSequencer(1))
	start := packetizer.Timestamp()

	frame := make([]byte, 100)
	packets := packetizer.Packetize(frame, 160)
	require.Greater(t, len(packets), 1)

	for _, p := range packets {
		assert.Equal(t, start, p.Timestamp)
	}
	assert.Equal(t, start+160, packetizer.Timestamp())
}

func TestPacketizerSequenceConsecutive(t *testing.T) {
	packetizer := NewPacketizer(16, PayloadPCMU, 1, &codecs.G711Payloader{}, NewFixedSequencer(65533))

	frame := make([]byte, 16)
	packets := packetizer.Packetize(frame, 160)
	require.Len(t, packets, 4)

	for i := 1; i < len(packets); i++ {
		assert.Equal(t, packets[i-1].SequenceNumber+1, packets[i].SequenceNumber)
	}
}

func TestPacketizerAbsSendTimeOnMarkerOnly(t *testing.T) {
	packetizer := NewPacketizer(16, PayloadPCMU, 1, &codecs.G711Payloader{}, NewFixedSequencer(1))
	packetizer.RegisterExtension(func(r *ExtensionRegistry) {
		r.RegisterAbsSendTime(1)
	})

	frame := make([]byte, 16)
	packets := packetizer.Packetize(frame, 160)
	require.Len(t, packets, 4)

	for i, p := range packets {
		if i == len(packets)-1 {
			assert.True(t, p.Extension)
			assert.Equal(t, uint16(extensionOneByteProfile), p.ExtensionProfile)
			assert.Len(t, p.ExtensionPayload, 4)

			continue
		}

		assert.False(t, p.Extension)
	}
}

// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSenderReportUnmarshal(t *testing.T) {
	raw := []byte{
		// v=2, p=0, count=1, SR, len=7
		0x81, 0xc8, 0x0, 0x7, // ssrc=0x902f9e2e
		0x90, 0x2f, 0x9e, 0x2e, // ntp=0xda8bd1fcdddda05a
		0xda, 0x8b, 0xd1, 0xfc, 0xdd, 0xdd, 0xa0, 0x5a, // rtp=0xaaf4edd5
		0xaa, 0xf4, 0xed, 0xd5, // packetCount=1
		0x00, 0x00, 0x00, 0x01, // octetCount=2
		0x00, 0x00, 0x00, 0x02, // ssrc=0xbc5e9a40
		0xbc, 0x5e, 0x9a, 0x40, // fracLost=0, totalLost=0
		0x0, 0x0, 0x0, 0x0, // lastSeq=0x46e1
		0x0, 0x0, 0x46, 0xe1, // jitter=273
		0x0, 0x0, 0x1, 0x11, // lsr=0x9f36432
		0x9, 0xf3, 0x64, 0x32, // delay=150137
		0x0, 0x2, 0x4a, 0x79,
	}

	var report SenderReport
	require.NoError(t, report.Unmarshal(raw))

	assert.Equal(t, uint32(0x902f9e2e), report.SSRC)
	assert.Equal(t, uint64(0xda8bd1fcdddda05a), report.NTPTime)
	assert.Equal(t, uint32(0xaaf4edd5), report.RTPTime)
	assert.Equal(t, uint32(1), report.PacketCount)
	assert.Equal(t, uint32(2), report.OctetCount)

	require.Len(t, report.Reports, 1)
	assert.Equal(t, ReceptionReport{
		SSRC:               0xbc5e9a40,
		FractionLost:       0,
		TotalLost:          0,
		LastSequenceNumber: 0x46e1,
		Jitter:             273,
		LastSenderReport:   0x9f36432,
		Delay:              150137,
	}, report.Reports[0])
}

func TestSenderReportMarshalRoundTrip(t *testing.T) {
	report := SenderReport{
		SSRC:        0x902f9e2e,
		NTPTime:     0xda8bd1fcdddda05a,
		RTPTime:     0xaaf4edd5,
		PacketCount: 1,
		OctetCount:  2,
		Reports: []ReceptionReport{
			{
				SSRC:               0xbc5e9a40,
				LastSequenceNumber: 0x46e1,
				Jitter:             273,
				LastSenderReport:   0x9f36432,
				Delay:              150137,
			},
		},
	}

	raw, err := report.Marshal()
	require.NoError(t, err)

	var roundTripped SenderReport
	require.NoError(t, roundTripped.Unmarshal(raw))
	assert.Equal(t, report, roundTripped)
}

func TestSenderReportMarshalRTPAndPacketCountNotSwapped(t *testing.T) {
	// Regression: the source wrote PacketCount into RTPTime's slot and
	// dropped PacketCount entirely.
	report := SenderReport{RTPTime: 0x11223344, PacketCount: 0x55667788}

	raw, err := report.Marshal()
	require.NoError(t, err)

	assert.Equal(t, uint32(0x11223344), binary.BigEndian.Uint32(raw[srRTPOffset:]))
	assert.Equal(t, uint32(0x55667788), binary.BigEndian.Uint32(raw[srPacketCountOffset:]))
}

func TestSenderReportDestinationSSRC(t *testing.T) {
	report := SenderReport{
		Reports: []ReceptionReport{{SSRC: 1}, {SSRC: 2}},
	}
	assert.Equal(t, []uint32{1, 2}, report.DestinationSSRC())
}

func TestSenderReportUnmarshalWrongType(t *testing.T) {
	raw := []byte{
		0x80, 0xc9, 0x0, 0x6,
		0x90, 0x2f, 0x9e, 0x2e,
		0xda, 0x8b, 0xd1, 0xfc, 0xdd, 0xdd, 0xa0, 0x5a,
		0xaa, 0xf4, 0xed, 0xd5,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
	}

	var report SenderReport
	assert.Error(t, report.Unmarshal(raw))
}

func TestSenderReportUnmarshalTooShort(t *testing.T) {
	var report SenderReport
	assert.Error(t, report.Unmarshal([]byte{0x80, 0xc8, 0x0, 0x0}))
}

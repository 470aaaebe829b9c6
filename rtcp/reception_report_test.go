// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceptionReportUnmarshal(t *testing.T) {
	raw := []byte{
		0x00, 0x00, 0x12, 0x34,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xab, 0xcd,
		0x00, 0x00, 0x00, 0x12,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}

	var report ReceptionReport
	require.NoError(t, report.Unmarshal(raw))

	assert.Equal(t, ReceptionReport{
		SSRC:               0x1234,
		LastSequenceNumber: 0xabcd,
		Jitter:             0x12,
	}, report)
}

func TestReceptionReportMarshal(t *testing.T) {
	report := ReceptionReport{
		SSRC:               0x1234,
		LastSequenceNumber: 0xabcd,
		Jitter:             0x12,
	}

	raw, err := report.Marshal()
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x00, 0x00, 0x12, 0x34,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0xab, 0xcd,
		0x00, 0x00, 0x00, 0x12,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}, raw)
}

func TestReceptionReportUnmarshalTooShort(t *testing.T) {
	var report ReceptionReport
	assert.Error(t, report.Unmarshal(make([]byte, ReceptionReportLength-1)))
}

func TestReceptionReportTotalLostBoundary(t *testing.T) {
	ok := ReceptionReport{TotalLost: (1 << 24) - 1}
	_, err := ok.Marshal()
	assert.NoError(t, err)

	tooMany := ReceptionReport{TotalLost: 1 << 24}
	_, err = tooMany.Marshal()
	assert.Error(t, err)
}

func TestReceptionReportTotalLost24Bit(t *testing.T) {
	report := ReceptionReport{TotalLost: 0xABCDEF}

	raw, err := report.Marshal()
	require.NoError(t, err)

	var roundTripped ReceptionReport
	require.NoError(t, roundTripped.Unmarshal(raw))
	assert.Equal(t, report.TotalLost, roundTripped.TotalLost)
}

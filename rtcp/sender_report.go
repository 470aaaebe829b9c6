// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	srBodyLength        = 24
	srSSRCOffset        = 4
	srNTPOffset         = 8
	srRTPOffset         = 16
	srPacketCountOffset = 20
	srOctetCountOffset  = 24
	srReportsOffset     = 28
)

var (
	errSenderReportTooShort = errors.New("rtcp: sender report too short")
	errWrongPacketType      = errors.New("rtcp: wrong packet type")
	errReportCountMismatch  = errors.New("rtcp: report count does not match header")
)

// SenderReport is sent by active senders periodically to report
// transmission and reception statistics, as well as their own
// RTP-to-wallclock mapping (RFC 3550 Section 6.4.1).
type SenderReport struct {
	// SSRC of the originator of this SenderReport.
	SSRC uint32
	// NTPTime is the wallclock time the report was sent, in 64-bit NTP
	// timestamp format.
	NTPTime uint64
	// RTPTime is the RTP timestamp corresponding to NTPTime, in the
	// same units and with the same random offset as the RTP timestamps
	// in data packets from this source.
	RTPTime uint32
	// PacketCount is the total number of RTP data packets sent by this
	// source since starting transmission.
	PacketCount uint32
	// OctetCount is the total number of payload octets sent by this
	// source since starting transmission.
	OctetCount uint32
	// Reports carries zero or more reception reports for sources this
	// sender has also been receiving from.
	Reports []ReceptionReport
	// ProfileExtensions carries any profile-specific extension data
	// following the reception reports.
	ProfileExtensions []byte
}

// Header returns the RTCP header this SenderReport would marshal with.
func (r SenderReport) Header() Header {
	return Header{
		ReportCount: uint8(len(r.Reports)),
		Type:        TypeSenderReport,
		Length:      uint16((r.MarshalSize() / 4) - 1),
	}
}

// DestinationSSRC returns the SSRCs of the sources reported on by this
// SenderReport's reception reports.
func (r SenderReport) DestinationSSRC() []uint32 {
	out := make([]uint32, len(r.Reports))
	for i, report := range r.Reports {
		out[i] = report.SSRC
	}

	return out
}

// MarshalSize returns the number of bytes Marshal will produce.
func (r SenderReport) MarshalSize() int {
	return headerLength + srBodyLength + len(r.Reports)*ReceptionReportLength + len(r.ProfileExtensions)
}

// Marshal encodes the SenderReport in binary.
func (r SenderReport) Marshal() ([]byte, error) {
	if len(r.Reports) > reportCountMax {
		return nil, errInvalidReportCount
	}

	rawHeader, err := r.Header().Marshal()
	if err != nil {
		return nil, err
	}

	raw := make([]byte, r.MarshalSize())
	copy(raw, rawHeader)

	binary.BigEndian.PutUint32(raw[srSSRCOffset:], r.SSRC)
	binary.BigEndian.PutUint64(raw[srNTPOffset:], r.NTPTime)
	binary.BigEndian.PutUint32(raw[srRTPOffset:], r.RTPTime)
	binary.BigEndian.PutUint32(raw[srPacketCountOffset:], r.PacketCount)
	binary.BigEndian.PutUint32(raw[srOctetCountOffset:], r.OctetCount)

	for i, report := range r.Reports {
		offset := srReportsOffset + i*ReceptionReportLength
		if _, err := report.MarshalTo(raw[offset : offset+ReceptionReportLength]); err != nil {
			return nil, err
		}
	}

	if len(r.ProfileExtensions) > 0 {
		offset := srReportsOffset + len(r.Reports)*ReceptionReportLength
		copy(raw[offset:], r.ProfileExtensions)
	}

	return raw, nil
}

// Unmarshal decodes a SenderReport from binary.
func (r *SenderReport) Unmarshal(raw []byte) error {
	if len(raw) < headerLength+srBodyLength {
		return errSenderReportTooShort
	}

	var header Header
	if err := header.Unmarshal(raw); err != nil {
		return err
	}
	if header.Type != TypeSenderReport {
		return errWrongPacketType
	}

	r.SSRC = binary.BigEndian.Uint32(raw[srSSRCOffset:])
	r.NTPTime = binary.BigEndian.Uint64(raw[srNTPOffset:])
	r.RTPTime = binary.BigEndian.Uint32(raw[srRTPOffset:])
	r.PacketCount = binary.BigEndian.Uint32(raw[srPacketCountOffset:])
	r.OctetCount = binary.BigEndian.Uint32(raw[srOctetCountOffset:])

	reports := make([]ReceptionReport, header.ReportCount)
	for i := range reports {
		offset := srReportsOffset + i*ReceptionReportLength
		if offset+ReceptionReportLength > len(raw) {
			return errReportCountMismatch
		}
		if err := reports[i].Unmarshal(raw[offset : offset+ReceptionReportLength]); err != nil {
			return err
		}
	}
	r.Reports = reports

	tail := srReportsOffset + len(reports)*ReceptionReportLength
	if tail < len(raw) {
		r.ProfileExtensions = append([]byte(nil), raw[tail:]...)
	} else {
		r.ProfileExtensions = nil
	}

	return nil
}

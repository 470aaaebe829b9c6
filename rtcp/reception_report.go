// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ReceptionReportLength is the fixed, 24-byte wire size of a
// ReceptionReport block.
const ReceptionReportLength = 24

const (
	rrSSRCOffset         = 0
	rrFractionLostOffset = 4
	rrTotalLostOffset    = 5
	rrLastSeqOffset      = 8
	rrJitterOffset       = 12
	rrLastSROffset       = 16
	rrDelayOffset        = 20
)

// maxTotalLost is one more than the largest value TotalLost can take:
// it is packed into 24 bits on the wire.
const maxTotalLost = 1 << 24

var (
	errReceptionReportTooShort = errors.New("rtcp: reception report too short")
	errInvalidTotalLost        = errors.New("rtcp: invalid total lost count")
)

// ReceptionReport is one 24-octet reception report block, as carried by
// both SenderReport and ReceiverReport packets (RFC 3550 Section 6.4.1).
type ReceptionReport struct {
	// SSRC of the source this block reports on.
	SSRC uint32
	// FractionLost is the fraction of packets lost since the previous
	// report, expressed as a fixed-point number with the binary point
	// at the left edge of the field.
	FractionLost uint8
	// TotalLost is the cumulative number of packets lost since the
	// beginning of reception. It must fit in 24 bits.
	TotalLost uint32
	// LastSequenceNumber extends the highest sequence number received
	// with a 16-bit count of sequence number cycles in its upper bits.
	LastSequenceNumber uint32
	// Jitter is an estimate of the statistical variance of packet
	// interarrival time, in timestamp units.
	Jitter uint32
	// LastSenderReport is the middle 32 bits of the NTP timestamp from
	// the most recently received SenderReport, or zero if none has been
	// received.
	LastSenderReport uint32
	// Delay is the time since LastSenderReport was received, in units
	// of 1/65536 seconds, or zero if none has been received.
	Delay uint32
}

// MarshalSize returns the number of bytes MarshalTo will write.
func (r ReceptionReport) MarshalSize() int {
	return ReceptionReportLength
}

// Marshal encodes the ReceptionReport in binary.
func (r ReceptionReport) Marshal() ([]byte, error) {
	buf := make([]byte, r.MarshalSize())
	if _, err := r.MarshalTo(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// MarshalTo encodes the ReceptionReport into buf, which must be at
// least MarshalSize() bytes long.
func (r ReceptionReport) MarshalTo(buf []byte) (int, error) {
	if r.TotalLost >= maxTotalLost {
		return 0, errInvalidTotalLost
	}
	if len(buf) < ReceptionReportLength {
		return 0, errReceptionReportTooShort
	}

	binary.BigEndian.PutUint32(buf[rrSSRCOffset:], r.SSRC)
	buf[rrFractionLostOffset] = r.FractionLost

	buf[rrTotalLostOffset] = byte(r.TotalLost >> 16)
	buf[rrTotalLostOffset+1] = byte(r.TotalLost >> 8)
	buf[rrTotalLostOffset+2] = byte(r.TotalLost)

	binary.BigEndian.PutUint32(buf[rrLastSeqOffset:], r.LastSequenceNumber)
	binary.BigEndian.PutUint32(buf[rrJitterOffset:], r.Jitter)
	binary.BigEndian.PutUint32(buf[rrLastSROffset:], r.LastSenderReport)
	binary.BigEndian.PutUint32(buf[rrDelayOffset:], r.Delay)

	return ReceptionReportLength, nil
}

// Unmarshal decodes a ReceptionReport from binary.
func (r *ReceptionReport) Unmarshal(raw []byte) error {
	if len(raw) < ReceptionReportLength {
		return errReceptionReportTooShort
	}

	r.SSRC = binary.BigEndian.Uint32(raw[rrSSRCOffset:])
	r.FractionLost = raw[rrFractionLostOffset]

	r.TotalLost = uint32(raw[rrTotalLostOffset])<<16 |
		uint32(raw[rrTotalLostOffset+1])<<8 |
		uint32(raw[rrTotalLostOffset+2])

	r.LastSequenceNumber = binary.BigEndian.Uint32(raw[rrLastSeqOffset:])
	r.Jitter = binary.BigEndian.Uint32(raw[rrJitterOffset:])
	r.LastSenderReport = binary.BigEndian.Uint32(raw[rrLastSROffset:])
	r.Delay = binary.BigEndian.Uint32(raw[rrDelayOffset:])

	return nil
}

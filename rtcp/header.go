// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package rtcp implements encoding and decoding of the RTCP control
// packet types defined in RFC 3550 Section 6 and RFC 4585.
package rtcp

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// PacketType identifies the kind of RTCP packet a Header belongs to.
type PacketType uint8

// RTCP packet types registered with IANA. See
// https://www.iana.org/assignments/rtp-parameters/rtp-parameters.xhtml#rtp-parameters-4
const (
	TypeSenderReport              PacketType = 200 // RFC 3550, 6.4.1
	TypeReceiverReport            PacketType = 201 // RFC 3550, 6.4.2
	TypeSourceDescription         PacketType = 202 // RFC 3550, 6.5
	TypeGoodbye                   PacketType = 203 // RFC 3550, 6.6
	TypeApplicationDefined        PacketType = 204 // RFC 3550, 6.7
	TypeTransportSpecificFeedback PacketType = 205 // RFC 4585, 6.2
	TypePayloadSpecificFeedback   PacketType = 206 // RFC 4585, 6.3
	TypeUnknown                   PacketType = 0
)

func (p PacketType) String() string {
	switch p {
	case TypeSenderReport:
		return "SR"
	case TypeReceiverReport:
		return "RR"
	case TypeSourceDescription:
		return "SDES"
	case TypeGoodbye:
		return "BYE"
	case TypeApplicationDefined:
		return "APP"
	case TypeTransportSpecificFeedback:
		return "TSFB"
	case TypePayloadSpecificFeedback:
		return "PSFB"
	default:
		return "UNKNOWN"
	}
}

// RTCPVersion is the version of RTCP this package implements, which is
// the same as the RTP version it rides alongside.
const RTCPVersion = 2

const (
	headerLength     = 4
	versionShift     = 6
	versionMask      = 0x3
	paddingShift     = 5
	paddingMask      = 0x1
	reportCountShift = 0
	reportCountMask  = 0x1f
	reportCountMax   = 0x1f
)

var (
	errHeaderTooShort     = errors.New("rtcp: header too short")
	errInvalidVersion     = errors.New("rtcp: invalid version")
	errInvalidReportCount = errors.New("rtcp: report count must fit in 5 bits")
)

// Header is the 4-byte fixed header shared by every RTCP packet type,
// as described in RFC 3550 Section 6.4.1:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|V=2|P|    RC   |       PT      |             length            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type Header struct {
	// Padding indicates the packet carries extra padding octets at its
	// tail which are counted in Length but are not control data.
	Padding bool
	// ReportCount is the number of report blocks carried by the packet.
	// Its meaning is packet-type specific; zero is valid.
	ReportCount uint8
	// Type identifies the RTCP packet type.
	Type PacketType
	// Length is the size of the packet in 32-bit words minus one,
	// padding included.
	Length uint16
}

// Marshal encodes the Header in binary.
func (h Header) Marshal() ([]byte, error) {
	if h.ReportCount > reportCountMax {
		return nil, errInvalidReportCount
	}

	raw := make([]byte, headerLength)
	raw[0] |= RTCPVersion << versionShift
	if h.Padding {
		raw[0] |= 1 << paddingShift
	}
	raw[0] |= h.ReportCount << reportCountShift
	raw[1] = uint8(h.Type)
	binary.BigEndian.PutUint16(raw[2:], h.Length)

	return raw, nil
}

// Unmarshal decodes a Header from binary.
func (h *Header) Unmarshal(raw []byte) error {
	if len(raw) < headerLength {
		return errHeaderTooShort
	}

	version := raw[0] >> versionShift & versionMask
	if version != RTCPVersion {
		return errInvalidVersion
	}

	h.Padding = (raw[0] >> paddingShift & paddingMask) > 0
	h.ReportCount = raw[0] >> reportCountShift & reportCountMask
	h.Type = PacketType(raw[1])
	h.Length = binary.BigEndian.Uint16(raw[2:])

	return nil
}

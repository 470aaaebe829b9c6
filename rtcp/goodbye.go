// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtcp

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ssrcLength is the wire size of a single SSRC/CSRC entry in a Goodbye
// packet's source list.
const ssrcLength = 4

// ssrcMaxCount is the largest number of sources a Goodbye can list: the
// RTCP header's report count field is only 5 bits wide.
const ssrcMaxCount = reportCountMax

// reasonMaxLength is the largest reason string a Goodbye can carry: its
// length prefix is a single byte.
const reasonMaxLength = 255

var (
	errGoodbyeNotAligned   = errors.New("rtcp: goodbye packet is not 32-bit aligned")
	errGoodbyeTooShort     = errors.New("rtcp: goodbye packet too short")
	errTooManySources      = errors.New("rtcp: too many goodbye sources")
	errReasonTooLong       = errors.New("rtcp: goodbye reason too long")
	errInvalidReasonLength = errors.New("rtcp: goodbye reason length exceeds packet")
	errInvalidReasonUTF8   = errors.New("rtcp: goodbye reason is not valid utf-8")
)

// Goodbye announces that one or more sources are leaving the session
// (RFC 3550 Section 6.6):
//
//	 0               1               2               3
//	 0 1 2 3 4 5 6 7 0 1 2 3 4 5 6 7 0 1 2 3 4 5 6 7 0 1 2 3 4 5 6 7
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|V=2|P|    RC   |   PT=BYE=203  |             length            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           SSRC/CSRC                           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	:                              ...                              :
//	+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+
//	|     length    |               reason for leaving            ...
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type Goodbye struct {
	// Sources lists the SSRC/CSRC identifiers of the sources that are
	// leaving the session.
	Sources []uint32
	// Reason optionally explains why the sources are leaving. Empty
	// means no reason was given.
	Reason string
}

// Header returns the RTCP header this Goodbye would marshal with.
func (g Goodbye) Header() Header {
	return Header{
		ReportCount: uint8(len(g.Sources)),
		Type:        TypeGoodbye,
		Length:      uint16((g.MarshalSize() / 4) - 1),
	}
}

// DestinationSSRC returns the list of departing sources.
func (g Goodbye) DestinationSSRC() []uint32 {
	return g.Sources
}

func (g Goodbye) reasonBlockSize() int {
	if g.Reason == "" {
		return 0
	}

	return 1 + len(g.Reason)
}

// MarshalSize returns the number of bytes Marshal will produce,
// including any padding required to reach a 32-bit boundary.
func (g Goodbye) MarshalSize() int {
	length := headerLength + ssrcLength*len(g.Sources) + g.reasonBlockSize()
	if rem := length % 4; rem != 0 {
		length += 4 - rem
	}

	return length
}

// Marshal encodes the Goodbye in binary.
func (g Goodbye) Marshal() ([]byte, error) {
	if len(g.Sources) > ssrcMaxCount {
		return nil, errTooManySources
	}
	if len(g.Reason) > reasonMaxLength {
		return nil, errReasonTooLong
	}

	rawHeader, err := g.Header().Marshal()
	if err != nil {
		return nil, err
	}

	raw := make([]byte, g.MarshalSize())
	copy(raw, rawHeader)

	for i, source := range g.Sources {
		offset := headerLength + ssrcLength*i
		binary.BigEndian.PutUint32(raw[offset:], source)
	}

	if g.Reason != "" {
		offset := headerLength + ssrcLength*len(g.Sources)
		raw[offset] = byte(len(g.Reason))
		copy(raw[offset+1:], g.Reason)
	}

	return raw, nil
}

// Unmarshal decodes a Goodbye from binary.
func (g *Goodbye) Unmarshal(raw []byte) error {
	var header Header
	if err := header.Unmarshal(raw); err != nil {
		return err
	}
	if header.Type != TypeGoodbye {
		return errWrongPacketType
	}
	if len(raw)%4 != 0 {
		return errGoodbyeNotAligned
	}

	reasonOffset := headerLength + ssrcLength*int(header.ReportCount)
	if reasonOffset > len(raw) {
		return errGoodbyeTooShort
	}

	sources := make([]uint32, header.ReportCount)
	for i := range sources {
		offset := headerLength + ssrcLength*i
		sources[i] = binary.BigEndian.Uint32(raw[offset:])
	}
	g.Sources = sources

	if reasonOffset == len(raw) {
		g.Reason = ""

		return nil
	}

	length := int(raw[reasonOffset])
	if reasonOffset+1+length > len(raw) {
		return errInvalidReasonLength
	}

	reason := raw[reasonOffset+1 : reasonOffset+1+length]
	if !utf8.Valid(reason) {
		return errInvalidReasonUTF8
	}
	g.Reason = string(reason)

	return nil
}

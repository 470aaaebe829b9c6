// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtp

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header represents an RTP packet header as defined in RFC 3550 Section 5.1.
type Header struct {
	Version        uint8
	Padding        bool
	Extension      bool
	Marker         bool
	PayloadType    uint8
	SequenceNumber uint16
	Timestamp      uint32
	SSRC           uint32
	CSRC           []uint32

	// ExtensionProfile and ExtensionPayload together form the RFC 3550
	// Section 5.3.1 generic header extension. ExtensionPayload is always
	// a multiple of 4 bytes; both fields are present only if Extension
	// is true.
	ExtensionProfile uint16
	ExtensionPayload []byte
}

// Packet represents an RTP packet: a Header plus its payload.
type Packet struct {
	Header
	Payload []byte
}

const (
	headerLength    = 4
	versionShift    = 6
	versionMask     = 0x3
	paddingShift    = 5
	paddingMask     = 0x1
	extensionShift  = 4
	extensionMask   = 0x1
	ccMask          = 0xF
	markerShift     = 7
	markerMask      = 0x1
	ptMask          = 0x7F
	seqNumOffset    = 2
	seqNumLength    = 2
	timestampOffset = 4
	timestampLength = 4
	ssrcOffset      = 8
	ssrcLength      = 4
	csrcOffset      = 12
	csrcLength      = 4

	// rtpVersion is the only version this library understands.
	rtpVersion = 2
)

// String helps with debugging by printing packet information in a readable way.
func (p Packet) String() string {
	out := "RTP PACKET:\n"
	out += fmt.Sprintf("\tVersion: %v\n", p.Version)
	out += fmt.Sprintf("\tMarker: %v\n", p.Marker)
	out += fmt.Sprintf("\tPayload Type: %d\n", p.PayloadType)
	out += fmt.Sprintf("\tSequence Number: %d\n", p.SequenceNumber)
	out += fmt.Sprintf("\tTimestamp: %d\n", p.Timestamp)
	out += fmt.Sprintf("\tSSRC: %d (%x)\n", p.SSRC, p.SSRC)
	out += fmt.Sprintf("\tPayload Length: %d\n", len(p.Payload))

	return out
}

// Unmarshal parses the passed byte slice and stores the result in the Header.
// It returns the number of bytes read and any error.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|V=2|P|X|  CC   |M|     PT      |       sequence number         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           timestamp                           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           synchronization source (SSRC) identifier            |
//	+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+=+
//	|            contributing source (CSRC) identifiers             |
//	|                             ....                              |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
func (h *Header) Unmarshal(buf []byte) (n int, err error) { //nolint:cyclop
	if len(buf) < headerLength {
		return 0, fmt.Errorf("%w: %d < %d", errHeaderSizeInsufficient, len(buf), headerLength)
	}

	h.Version = buf[0] >> versionShift & versionMask
	if h.Version != rtpVersion {
		return 0, &InvalidVersionError{Version: h.Version}
	}
	h.Padding = (buf[0] >> paddingShift & paddingMask) > 0
	h.Extension = (buf[0] >> extensionShift & extensionMask) > 0
	nCSRC := int(buf[0] & ccMask)

	n = csrcOffset + (nCSRC * csrcLength)
	if len(buf) < n {
		return n, fmt.Errorf("size %d < %d: %w", len(buf), n, errHeaderSizeInsufficient)
	}

	h.Marker = (buf[1] >> markerShift & markerMask) > 0
	h.PayloadType = buf[1] & ptMask

	h.SequenceNumber = binary.BigEndian.Uint16(buf[seqNumOffset : seqNumOffset+seqNumLength])
	h.Timestamp = binary.BigEndian.Uint32(buf[timestampOffset : timestampOffset+timestampLength])
	h.SSRC = binary.BigEndian.Uint32(buf[ssrcOffset : ssrcOffset+ssrcLength])

	if nCSRC > 0 {
		h.CSRC = make([]uint32, nCSRC)
		for i := range h.CSRC {
			offset := csrcOffset + (i * csrcLength)
			h.CSRC[i] = binary.BigEndian.Uint32(buf[offset:])
		}
	} else {
		h.CSRC = nil
	}

	h.ExtensionProfile = 0
	h.ExtensionPayload = nil

	if h.Extension {
		if expected := n + 4; len(buf) < expected {
			return n, fmt.Errorf("size %d < %d: %w", len(buf), expected, errHeaderSizeInsufficientForExtension)
		}

		h.ExtensionProfile = binary.BigEndian.Uint16(buf[n:])
		n += 2
		extensionLength := int(binary.BigEndian.Uint16(buf[n:])) * 4
		n += 2
		extensionEnd := n + extensionLength

		if len(buf) < extensionEnd {
			return n, fmt.Errorf("size %d < %d: %w", len(buf), extensionEnd, errHeaderSizeInsufficientForExtension)
		}

		h.ExtensionPayload = make([]byte, extensionLength)
		copy(h.ExtensionPayload, buf[n:extensionEnd])
		n = extensionEnd
	}

	return n, nil
}

// Unmarshal parses the passed byte slice and stores the result in the Packet.
// Parsed packets own their bytes: no slice of buf is retained.
func (p *Packet) Unmarshal(buf []byte) error {
	n, err := p.Header.Unmarshal(buf)
	if err != nil {
		return err
	}

	if len(buf) < n {
		return errTooSmall
	}

	p.Payload = make([]byte, len(buf)-n)
	copy(p.Payload, buf[n:])

	return nil
}

// MarshalSize returns the size of the header once marshaled.
func (h Header) MarshalSize() int {
	size := 12 + (len(h.CSRC) * csrcLength)
	if h.Extension {
		size += 4 + len(h.ExtensionPayload)
	}

	return size
}

// MarshalTo serializes the header and writes it to buf, returning the
// number of bytes written.
func (h Header) MarshalTo(buf []byte) (n int, err error) {
	size := h.MarshalSize()
	if size > len(buf) {
		return 0, io.ErrShortBuffer
	}

	if h.Extension && len(h.ExtensionPayload)%4 != 0 {
		return 0, &InvalidHeaderExtensionError{Length: len(h.ExtensionPayload)}
	}

	buf[0] = (rtpVersion << versionShift) | uint8(len(h.CSRC)&ccMask) //nolint:gosec // CSRC length fits a nibble by construction
	if h.Padding {
		buf[0] |= 1 << paddingShift
	}
	if h.Extension {
		buf[0] |= 1 << extensionShift
	}

	buf[1] = h.PayloadType
	if h.Marker {
		buf[1] |= 1 << markerShift
	}

	binary.BigEndian.PutUint16(buf[2:4], h.SequenceNumber)
	binary.BigEndian.PutUint32(buf[4:8], h.Timestamp)
	binary.BigEndian.PutUint32(buf[8:12], h.SSRC)

	n = 12
	for _, csrc := range h.CSRC {
		binary.BigEndian.PutUint32(buf[n:n+4], csrc)
		n += 4
	}

	if h.Extension {
		binary.BigEndian.PutUint16(buf[n:n+2], h.ExtensionProfile)
		binary.BigEndian.PutUint16(buf[n+2:n+4], uint16(len(h.ExtensionPayload)/4)) //nolint:gosec // bounded by caller-supplied payload
		n += 4
		n += copy(buf[n:], h.ExtensionPayload)
	}

	return n, nil
}

// Marshal serializes the header into a freshly allocated buffer.
func (h Header) Marshal() ([]byte, error) {
	buf := make([]byte, h.MarshalSize())

	n, err := h.MarshalTo(buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// MarshalSize returns the size of the packet once marshaled.
func (p Packet) MarshalSize() int {
	return p.Header.MarshalSize() + len(p.Payload)
}

// MarshalTo serializes the packet and writes it to buf.
func (p Packet) MarshalTo(buf []byte) (n int, err error) {
	n, err = p.Header.MarshalTo(buf)
	if err != nil {
		return 0, err
	}

	if n+len(p.Payload) > len(buf) {
		return 0, io.ErrShortBuffer
	}

	n += copy(buf[n:], p.Payload)

	return n, nil
}

// Marshal serializes the packet into a freshly allocated buffer.
func (p Packet) Marshal() ([]byte, error) {
	buf := make([]byte, p.MarshalSize())

	n, err := p.MarshalTo(buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// Clone returns a deep copy of h.
func (h Header) Clone() Header {
	clone := h
	if h.CSRC != nil {
		clone.CSRC = make([]uint32, len(h.CSRC))
		copy(clone.CSRC, h.CSRC)
	}
	if h.ExtensionPayload != nil {
		clone.ExtensionPayload = make([]byte, len(h.ExtensionPayload))
		copy(clone.ExtensionPayload, h.ExtensionPayload)
	}

	return clone
}

// Clone returns a deep copy of p.
func (p Packet) Clone() Packet {
	clone := Packet{Header: p.Header.Clone()}
	if p.Payload != nil {
		clone.Payload = make([]byte, len(p.Payload))
		copy(clone.Payload, p.Payload)
	}

	return clone
}

// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtp

import "time"

// extensionOneByteProfile is the one-byte header extension profile
// defined in RFC 5285 Section 4.2, used when the packetizer composes a
// header extension payload itself rather than accepting an opaque blob.
const extensionOneByteProfile = 0xBEDE

// ExtensionNumber is the one-byte extension local ID under which a
// registered RTP header extension is emitted. Only abs-send-time is
// implemented.
type ExtensionNumber uint8

// AbsSendTime returns the ExtensionNumber for the abs-send-time extension
// (http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time) under
// the given one-byte extension local ID (1-14). It registers nothing
// itself; pass the result to RegisterAbsSendTime.
func AbsSendTime(id uint8) ExtensionNumber {
	return ExtensionNumber(id)
}

// ExtensionRegistry holds the set of header extensions a Packetizer
// emits on the marker packet of every call to Packetize.
type ExtensionRegistry struct {
	absSendTimeID ExtensionNumber
	now           func() time.Time
}

// NewExtensionRegistry returns an empty registry.
func NewExtensionRegistry() *ExtensionRegistry {
	return &ExtensionRegistry{now: time.Now}
}

// RegisterAbsSendTime enables emission of the abs-send-time extension
// under the given local ID on the marker packet of every Packetize
// call.
func (r *ExtensionRegistry) RegisterAbsSendTime(id ExtensionNumber) {
	r.absSendTimeID = id
}

// empty reports whether no extension is registered.
func (r *ExtensionRegistry) empty() bool {
	return r.absSendTimeID == 0
}

// build composes the one-byte-form extension profile and payload to
// attach to the marker packet, per spec Section 4.8 step 4.
func (r *ExtensionRegistry) build() (profile uint16, payload []byte) {
	if r.absSendTimeID == 0 {
		return 0, nil
	}

	ext := AbsSendTimeExtension{
		ID:        uint8(r.absSendTimeID),
		Timestamp: toAbsSendTime(r.now()),
	}

	b, err := ext.Marshal()
	if err != nil {
		// Marshal never fails: the payload is a fixed 4 bytes.
		return 0, nil
	}

	return extensionOneByteProfile, b
}

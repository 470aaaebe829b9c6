// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codecs

// OpusPayloader payloads Opus frames. Opus packets are self-delimiting
// at the RTP layer, so a frame is always a single payload; mtu is
// ignored.
type OpusPayloader struct{}

// Payload returns payload unchanged as the sole RTP payload, or nil if
// payload is empty.
func (*OpusPayloader) Payload(_ uint16, payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}

	out := make([]byte, len(payload))
	copy(out, payload)

	return [][]byte{out}
}

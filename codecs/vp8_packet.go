// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codecs

// vp8DescriptorSize is the size, in bytes, of the minimal VP8 payload
// descriptor this payloader emits: no picture ID, no TL0PICIDX, no
// layer indices, just the required first byte.
const vp8DescriptorSize = 1

// VP8Payloader payloads VP8 frames, prefixing each fragment with the
// 1-byte required VP8 payload descriptor (RFC 7741 Section 4.2). Only
// the S (start of frame) bit is ever set, on the first fragment.
type VP8Payloader struct{}

// Payload fragments a VP8 frame across one or more byte arrays.
func (*VP8Payloader) Payload(mtu uint16, payload []byte) [][]byte {
	if mtu <= vp8DescriptorSize {
		return nil
	}

	maxFragmentSize := int(mtu) - vp8DescriptorSize
	remaining := len(payload)
	index := 0

	var payloads [][]byte
	for remaining > 0 {
		currentSize := maxFragmentSize
		if currentSize > remaining {
			currentSize = remaining
		}

		fragment := make([]byte, vp8DescriptorSize+currentSize)
		copy(fragment[vp8DescriptorSize:], payload[index:index+currentSize])
		payloads = append(payloads, fragment)

		remaining -= currentSize
		index += currentSize
	}

	if len(payloads) > 0 {
		payloads[0][0] = 0x10
	}

	return payloads
}

// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codecs

import "github.com/pion/randutil"

// vp9RandomGenerator seeds each VP9Payloader's initial picture ID.
var vp9RandomGenerator = randutil.NewMathRandomGenerator() //nolint:gochecknoglobals

// vp9DescriptorSize is the size, in bytes, of the flexible-mode VP9
// payload descriptor this payloader emits: flags byte, extended
// picture-id byte, picture-id byte. No layer indices, no scalability
// structure.
const vp9DescriptorSize = 3

// vp9PictureIDWrap is the point at which the 15-bit picture ID resets
// to zero.
const vp9PictureIDWrap = 0x8000

// VP9Payloader payloads VP9 frames using the flexible-mode descriptor
// from draft-ietf-payload-vp9-09 Section 4.2: I, B, E bits plus a
// 15-bit, M-bit-extended picture ID that advances once per frame.
//
// Stateful: one VP9Payloader must not be shared between concurrent
// streams, matching the single-producer contract of the Packetizer
// that owns it.
type VP9Payloader struct {
	pictureID uint16
	init      bool
}

func (p *VP9Payloader) ensureInit() {
	if p.init {
		return
	}
	p.pictureID = uint16(vp9RandomGenerator.Intn(vp9PictureIDWrap)) //nolint:gosec // G115
	p.init = true
}

// Payload fragments a VP9 frame across one or more byte arrays.
func (p *VP9Payloader) Payload(mtu uint16, payload []byte) [][]byte {
	if len(payload) == 0 || mtu <= vp9DescriptorSize {
		return nil
	}

	p.ensureInit()

	maxSize := int(mtu) - vp9DescriptorSize
	remaining := len(payload)
	index := 0

	var payloads [][]byte
	for remaining > 0 {
		currentSize := maxSize
		if currentSize > remaining {
			currentSize = remaining
		}

		fragment := make([]byte, vp9DescriptorSize+currentSize)
		fragment[0] = 0x90
		if index == 0 {
			fragment[0] |= 0x08 // B: begin of frame
		}
		// The E (end) bit reflects the fragment about to be emitted, so it
		// must be decided against the pre-subtraction remaining count.
		if remaining == currentSize {
			fragment[0] |= 0x04 // E: end of frame
		}
		fragment[1] = byte(p.pictureID>>8) | 0x80
		fragment[2] = byte(p.pictureID)
		copy(fragment[vp9DescriptorSize:], payload[index:index+currentSize])

		payloads = append(payloads, fragment)
		remaining -= currentSize
		index += currentSize
	}

	p.pictureID++
	if p.pictureID >= vp9PictureIDWrap {
		p.pictureID = 0
	}

	return payloads
}

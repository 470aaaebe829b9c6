// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codecs

// G722Payloader payloads G.722 samples into fixed-size RTP payload
// chunks. Identical chunking rule to G711Payloader: G.722 also carries
// no framing of its own.
type G722Payloader struct{}

// Payload fragments a G.722 sample buffer across one or more byte arrays.
func (*G722Payloader) Payload(mtu uint16, payload []byte) [][]byte {
	if mtu == 0 || len(payload) == 0 {
		return nil
	}

	var payloads [][]byte
	for len(payload) > int(mtu) {
		chunk := make([]byte, mtu)
		copy(chunk, payload[:mtu])
		payloads = append(payloads, chunk)
		payload = payload[mtu:]
	}

	tail := make([]byte, len(payload))
	copy(tail, payload)
	payloads = append(payloads, tail)

	return payloads
}

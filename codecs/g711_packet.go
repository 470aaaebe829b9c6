// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codecs

// G711Payloader payloads G.711 (PCMU/PCMA) samples into fixed-size RTP
// payload chunks. G.711 carries no framing of its own, so the chunker
// simply splits on mtu-sized boundaries with a final, possibly shorter,
// tail chunk.
type G711Payloader struct{}

// Payload fragments a G.711 sample buffer across one or more byte arrays.
func (*G711Payloader) Payload(mtu uint16, payload []byte) [][]byte {
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

// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package codecs

const (
	fuaHeaderSize  = 2
	naluTypeMask   = 0x1F
	naluRefIdcMask = 0x60
	naluTypeAUD    = 9
	naluTypeFiller = 12
)

// H264Payloader payloads H.264 Annex B bitstreams into RTP payloads:
// single NALUs pass through unchanged, oversized NALUs are split into
// FU-A fragments per RFC 6184 Section 5.8. AUD (type 9) and filler
// (type 12) NAL units are dropped.
type H264Payloader struct{}

// nextStartCode scans data for the next start code (0x000001 or
// 0x00000001) at or after offset start and returns the offset of its
// first byte and its length in bytes. It returns ok=false when no
// further start code is found.
func nextStartCode(data []byte, start int) (codeStart, codeLen int, ok bool) {
	zeros := 0
	for i := start; i < len(data); i++ {
		switch data[i] {
		case 0x00:
			zeros++
		case 0x01:
			if zeros >= 2 {
				return i - zeros, zeros + 1, true
			}
			zeros = 0
		default:
			zeros = 0
		}
	}

	return 0, 0, false
}

// splitNALUs splits an Annex B bitstream into the byte ranges between
// consecutive start codes. If no start code is present at all, the
// entire buffer is treated as a single NAL unit.
func splitNALUs(data []byte) [][]byte {
	start, length, ok := nextStartCode(data, 0)
	if !ok {
		return [][]byte{data}
	}

	var units [][]byte
	cursor := start + length
	for {
		nextStart, nextLen, found := nextStartCode(data, cursor)
		if !found {
			if cursor < len(data) {
				units = append(units, data[cursor:])
			}

			return units
		}

		if nextStart > cursor {
			units = append(units, data[cursor:nextStart])
		}
		cursor = nextStart + nextLen
	}
}

// Payload fragments an H.264 Annex B bitstream across one or more byte arrays.
func (*H264Payloader) Payload(mtu uint16, payload []byte) [][]byte {
	if len(payload) == 0 {
		return nil
	}

	var out [][]byte
	for _, nalu := range splitNALUs(payload) {
		if len(nalu) == 0 {
			continue
		}

		naluType := nalu[0] & naluTypeMask
		if naluType == naluTypeAUD || naluType == naluTypeFiller {
			continue
		}

		out = append(out, payloadNALU(mtu, naluType, nalu)...)
	}

	return out
}

func payloadNALU(mtu uint16, naluType byte, nalu []byte) [][]byte {
	if len(nalu) < int(mtu) {
		single := make([]byte, len(nalu))
		copy(single, nalu)

		return [][]byte{single}
	}

	naluRefIdc := nalu[0] & naluRefIdcMask
	maxFragmentSize := int(mtu) - fuaHeaderSize
	if maxFragmentSize <= 0 {
		return nil
	}

	dataIndex := 1
	dataLength := len(nalu) - 1
	remaining := dataLength

	var payloads [][]byte
	for remaining > 0 {
		currentSize := maxFragmentSize
		if currentSize > remaining {
			currentSize = remaining
		}

		out := make([]byte, fuaHeaderSize+currentSize)
		out[0] = 0x1C | naluRefIdc
		out[1] = naluType
		if remaining == dataLength {
			out[1] |= 1 << 7 // start
		} else if remaining-currentSize == 0 {
			out[1] |= 1 << 6 // end
		}
		copy(out[fuaHeaderSize:], nalu[dataIndex:dataIndex+currentSize])

		payloads = append(payloads, out)
		remaining -= currentSize
		dataIndex += currentSize
	}

	return payloads
}

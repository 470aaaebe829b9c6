// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package codecs implements per-codec RTP payload fragmentation: turning
// one compressed media frame into the ordered octet-runs a Packetizer
// wraps with RTP headers.
package codecs

// Payloader fragments a single media frame into one or more RTP payload
// octet-runs bounded by mtu. A nil or empty result means the frame could
// not be fragmented (e.g. mtu too small, or an empty frame); callers
// must not emit any RTP packet in that case.
type Payloader interface {
	Payload(mtu uint16, payload []byte) [][]byte
}

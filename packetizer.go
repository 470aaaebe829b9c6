// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtp

import "github.com/rtpweave/rtp/codecs"

// headerMinSize is the smallest possible RTP header: the 12-byte fixed
// header with no CSRC list and no extension.
const headerMinSize = 12

// Packetizer turns a sequence of codec-specific media frames into a
// stream of RTP packets. It is stateful (current timestamp, sequence
// number, any fragmenter state such as the VP9 picture ID) and must be
// used by exactly one logical producer at a time.
type Packetizer struct {
	mtu         uint16
	payloadType uint8
	ssrc        uint32

	currentTimestamp uint32
	sequencer        Sequencer
	fragmenter       codecs.Payloader
	extensions       *ExtensionRegistry
}

// NewPacketizer returns a Packetizer bound to a fixed MTU, payload type,
// SSRC and fragmenter. The initial timestamp is drawn from the
// package's random source.
func NewPacketizer(mtu uint16, payloadType uint8, ssrc uint32, fragmenter codecs.Payloader, sequencer Sequencer) *Packetizer {
	return &Packetizer{
		mtu:              mtu,
		payloadType:      payloadType,
		ssrc:             ssrc,
		currentTimestamp: globalMathRandomGenerator.Uint32(),
		sequencer:        sequencer,
		fragmenter:       fragmenter,
		extensions:       NewExtensionRegistry(),
	}
}

// RegisterExtension exposes the packetizer's extension registry so
// callers can enable extensions such as abs-send-time before the first
// call to Packetize.
func (p *Packetizer) RegisterExtension(r func(*ExtensionRegistry)) {
	r(p.extensions)
}

// Timestamp returns the timestamp that will be stamped on the next
// batch of packets produced by Packetize.
func (p *Packetizer) Timestamp() uint32 {
	return p.currentTimestamp
}

// Packetize fragments frame into RTP packets via the configured
// fragmenter, then advances the internal timestamp by samples. It
// returns nil if frame is empty, the MTU leaves no room for payload
// after the 12-byte header, or the fragmenter could not produce any
// fragment.
func (p *Packetizer) Packetize(frame []byte, samples uint32) []*Packet {
	if len(frame) == 0 || p.mtu <= headerMinSize {
		return nil
	}

	fragments := p.fragmenter.Payload(p.mtu-headerMinSize, frame)
	if len(fragments) == 0 {
		return nil
	}

	packets := make([]*Packet, len(fragments))
	for i, fragment := range fragments {
		packets[i] = &Packet{
			Header: Header{
				Version:        rtpVersion,
				Marker:         i == len(fragments)-1,
				PayloadType:    p.payloadType,
				SequenceNumber: p.sequencer.NextSequenceNumber(),
				Timestamp:      p.currentTimestamp,
				SSRC:           p.ssrc,
			},
			Payload: fragment,
		}
	}

	if !p.extensions.empty() {
		profile, payload := p.extensions.build()
		if payload != nil {
			last := packets[len(packets)-1]
			last.Extension = true
			last.ExtensionProfile = profile
			last.ExtensionPayload = payload
		}
	}

	p.currentTimestamp += samples

	return packets
}

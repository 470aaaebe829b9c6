// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtp

import "github.com/pion/randutil"

// globalMathRandomGenerator is the process-wide random source for the
// initial sequence number of NewRandomSequencer and the initial
// timestamp of NewPacketizer. Neither constructor accepts another
// generator; deterministic tests use NewFixedSequencer instead.
var globalMathRandomGenerator = randutil.NewMathRandomGenerator() //nolint:gochecknoglobals

// Sequencer generates sequential sequence numbers for building RTP packets.
type Sequencer interface {
	NextSequenceNumber() uint16
	RollOverCount() uint64
}

// sequencer is single-threaded: one logical RTP stream owns one
// Sequencer at a time, per the concurrency model of this library.
type sequencer struct {
	sequenceNumber uint16
	rollOverCount  uint64
}

// NewRandomSequencer returns a new Sequencer starting from a random
// initial sequence number drawn from the package's random source.
func NewRandomSequencer() Sequencer {
	return &sequencer{
		sequenceNumber: uint16(globalMathRandomGenerator.Intn(1 << 16)), //nolint:gosec // G115
	}
}

// NewFixedSequencer returns a new Sequencer whose first emitted sequence
// number is s. Useful for deterministic tests.
func NewFixedSequencer(s uint16) Sequencer {
	return &sequencer{sequenceNumber: s - 1}
}

// NextSequenceNumber increments and returns the next sequence number to
// use when building an RTP packet. On wrap from 0xFFFF to 0x0000 the
// roll-over counter advances.
func (s *sequencer) NextSequenceNumber() uint16 {
	s.sequenceNumber++
	if s.sequenceNumber == 0 {
		s.rollOverCount++
	}

	return s.sequenceNumber
}

// RollOverCount returns the number of times the 16-bit sequence number
// has wrapped around zero.
func (s *sequencer) RollOverCount() uint64 {
	return s.rollOverCount
}

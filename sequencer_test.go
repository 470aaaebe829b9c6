// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequencerBasic(t *testing.T) {
	sequencer := NewFixedSequencer(1)
	assert.Equal(t, uint16(1), sequencer.NextSequenceNumber())
	assert.Equal(t, uint64(0), sequencer.RollOverCount())
}

func TestSequencerWrapAround(t *testing.T) {
	sequencer := NewFixedSequencer(65535)
	assert.Equal(t, uint16(65535), sequencer.NextSequenceNumber())
	assert.Equal(t, uint16(0), sequencer.NextSequenceNumber())
	assert.Equal(t, uint64(1), sequencer.RollOverCount())
	assert.Equal(t, uint16(1), sequencer.NextSequenceNumber())
}

func TestSequencerMultipleRollovers(t *testing.T) {
	sequencer := NewFixedSequencer(65535)
	sequencer.NextSequenceNumber()
	sequencer.NextSequenceNumber()
	assert.Equal(t, uint64(1), sequencer.RollOverCount())

	for i := 0; i < 65536; i++ {
		sequencer.NextSequenceNumber()
	}

	assert.Equal(t, uint64(2), sequencer.RollOverCount())
}

func TestRandomSequencer(t *testing.T) {
	sequencer := NewRandomSequencer()
	first := sequencer.NextSequenceNumber()
	second := sequencer.NextSequenceNumber()
	assert.Equal(t, first+1, second)
}

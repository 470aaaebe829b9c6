// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package rtp

import "errors"

var (
	errHeaderSizeInsufficient             = errors.New("RTP header size insufficient")
	errHeaderSizeInsufficientForExtension = errors.New("RTP header size insufficient for extension")
	errTooSmall                           = errors.New("buffer too small")
	errInvalidRTPVersion                  = errors.New("invalid RTP version")
	errInvalidRTPHeaderExtensionLength    = errors.New("RTP header extension payload must be a multiple of 4 bytes")
)

// InvalidVersionError is returned when a parsed RTP packet carries a
// version field other than 2.
type InvalidVersionError struct {
	Version uint8
}

func (e *InvalidVersionError) Error() string {
	return "invalid RTP version"
}

func (e *InvalidVersionError) Unwrap() error {
	return errInvalidRTPVersion
}

// InvalidHeaderExtensionError is returned when an extension payload's
// length is not a multiple of 4 bytes.
type InvalidHeaderExtensionError struct {
	Length int
}

func (e *InvalidHeaderExtensionError) Error() string {
	return "invalid RTP header extension length"
}

func (e *InvalidHeaderExtensionError) Unwrap() error {
	return errInvalidRTPHeaderExtensionLength
}

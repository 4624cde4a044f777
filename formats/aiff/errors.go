// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the input lacks a valid
	// FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported is returned for AIFF files whose
	// samples aren't 16-bit PCM.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout is returned when go-audio/aiff can't
	// resolve a channel/sample-rate format for the file.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")

	// ErrUnsupportedAiffChunks names AIFF files with unsupported or
	// malformed chunk data. Decoder does not currently return it.
	ErrUnsupportedAiffChunks = errors.New("unsupported or malformed AIFF chunks")
)

// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrInvalidWav is returned when the input is missing the RIFF/WAVE
	// header or is shorter than a minimal WAV file can be.
	ErrInvalidWav = errors.New("invalid WAV file")

	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrUnsupportedWavChunks  = errors.New("unsupported WAV chunks")
)

// SPDX-License-Identifier: EPL-2.0

package loudcore

import "errors"

// Error kinds a caller can check with errors.Is. Each corresponds to
// one of the façade's documented failure conditions; none are
// recovered internally.
var (
	// ErrUnsupportedSampleRate is returned when integrated loudness or
	// normalization is requested at a rate other than 44100 or 48000 Hz.
	ErrUnsupportedSampleRate = errors.New("loudcore: unsupported sample rate")

	// ErrChannelCountMismatch is returned by Concat/Mix across tracks
	// with a different number of channels.
	ErrChannelCountMismatch = errors.New("loudcore: channel count mismatch")

	// ErrSampleRateMismatch is returned by Concat/Mix across tracks
	// with a different sample rate.
	ErrSampleRateMismatch = errors.New("loudcore: sample rate mismatch")

	// ErrChannelIndexOutOfRange is returned by GetChannel for an index
	// outside [0, ChannelCount()).
	ErrChannelIndexOutOfRange = errors.New("loudcore: channel index out of range")

	// ErrInvalidSpeedRate is returned by Speed for a rate factor <= 0.
	ErrInvalidSpeedRate = errors.New("loudcore: speed rate factor must be > 0")

	// ErrInvalidWav is returned by FromBuffer when the input looks like
	// a WAV file (RIFF/WAVE tags present) but its header is malformed
	// or shorter than 44 bytes.
	ErrInvalidWav = errors.New("loudcore: invalid WAV file")

	// ErrDecodeFailed is returned by FromBuffer when the external
	// codec (MP3, Ogg Vorbis, AIFF) rejects the input.
	ErrDecodeFailed = errors.New("loudcore: decode failed")

	// ErrEncodeFailed is returned by ToWAV/ToMP3 when the underlying
	// encoder rejects the track.
	ErrEncodeFailed = errors.New("loudcore: encode failed")

	// ErrEmptyChannels is returned by FromChannels when given zero
	// channels, violating the Track invariant that it hold at least
	// one channel buffer.
	ErrEmptyChannels = errors.New("loudcore: at least one channel is required")

	// ErrChannelLengthMismatch is returned by FromChannels when the
	// supplied channel buffers do not all share the same length
	// (invariant I1).
	ErrChannelLengthMismatch = errors.New("loudcore: channel buffers must share a length")

	// ErrInvalidSampleRate is returned by FromChannels for rate <= 0
	// (invariant I2).
	ErrInvalidSampleRate = errors.New("loudcore: sample rate must be > 0")

	// ErrUnsupportedBitrate is returned by ToMP3 for any bitrate other
	// than DefaultMP3Bitrate; see formats/mp3.SupportedBitrate.
	ErrUnsupportedBitrate = errors.New("loudcore: unsupported mp3 bitrate")
)

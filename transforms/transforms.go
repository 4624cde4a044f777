// SPDX-License-Identifier: EPL-2.0

// Package transforms implements the loudness-preserving family of
// per-channel-buffer operations the Track façade exposes: gain,
// fades, slice, reverse, concat, mix, speed, silence trimming, and
// loudness normalization.
//
// Every function here takes and returns ordered channel buffers
// ([][]float32, one slice per channel) plus a sample rate; output
// buffers are always freshly allocated, the same never-alias
// convention audio.MonoMixer uses. Track (the immutable façade in the
// root package) is the only caller; these functions hold no state of
// their own.
package transforms

import "errors"

var (
	// ErrChannelCountMismatch is returned by Concat/Mix when the two
	// inputs have a different number of channels.
	ErrChannelCountMismatch = errors.New("transforms: channel count mismatch")
	// ErrSampleRateMismatch is returned by Concat/Mix when the two
	// inputs have a different sample rate.
	ErrSampleRateMismatch = errors.New("transforms: sample rate mismatch")
	// ErrInvalidSpeedRate is returned by Speed for rateFactor <= 0.
	ErrInvalidSpeedRate = errors.New("transforms: speed rate factor must be > 0")
)

func cloneChannels(channels [][]float32) [][]float32 {
	out := make([][]float32, len(channels))
	for i, ch := range channels {
		out[i] = append([]float32(nil), ch...)
	}
	return out
}

func msToSamples(ms int, rate int) int {
	return ms * rate / 1000
}

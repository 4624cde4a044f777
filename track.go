// SPDX-License-Identifier: EPL-2.0

package loudcore

import "time"

// Track is an immutable bundle of one or more equal-length channel
// buffers sharing a sample rate. FromBuffer reduces decoded sources of
// more than two channels to mono; FromChannels and Silence keep the
// channel count they are given. Every Track method
// that produces a result returns a fresh Track; t itself is never
// mutated, and construction never aliases a caller-owned buffer.
type Track struct {
	channels   [][]float32
	sampleRate int
}

// SampleRate returns t's sample rate in Hz.
func (t *Track) SampleRate() int { return t.sampleRate }

// ChannelCount returns the number of channels: 1 for mono, 2 for
// stereo.
func (t *Track) ChannelCount() int { return len(t.channels) }

// Length returns the number of samples per channel.
func (t *Track) Length() int {
	if len(t.channels) == 0 {
		return 0
	}
	return len(t.channels[0])
}

// Duration returns Length()/SampleRate() as a time.Duration.
func (t *Track) Duration() time.Duration {
	if t.sampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(t.Length()) / float64(t.sampleRate) * float64(time.Second))
}

// GetChannel returns a copy of channel i. i must be in
// [0, ChannelCount()); otherwise ErrChannelIndexOutOfRange is
// returned.
func (t *Track) GetChannel(i int) ([]float32, error) {
	if i < 0 || i >= len(t.channels) {
		return nil, ErrChannelIndexOutOfRange
	}
	return append([]float32(nil), t.channels[i]...), nil
}

func toFloat64Channels(channels [][]float32) [][]float64 {
	out := make([][]float64, len(channels))
	for c, ch := range channels {
		dst := make([]float64, len(ch))
		for i, x := range ch {
			dst[i] = float64(x)
		}
		out[c] = dst
	}
	return out
}

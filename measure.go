// SPDX-License-Identifier: EPL-2.0

package loudcore

import (
	"errors"
	"math"

	"github.com/broadcastgo/loudcore/dsp/kweighting"
	"github.com/broadcastgo/loudcore/loudness"
	"github.com/broadcastgo/loudcore/truepeak"
)

// Loudness returns t's integrated loudness in LUFS per ITU-R
// BS.1770-4 / EBU R128. Negative infinity is a sentinel value for
// silence or a track shorter than one 400ms block, not an error.
// ErrUnsupportedSampleRate is returned for any rate other than 44100
// or 48000 Hz.
func (t *Track) Loudness() (float64, error) {
	result, err := loudness.Integrated(toFloat64Channels(t.channels), t.sampleRate)
	if err != nil {
		if errors.Is(err, kweighting.ErrUnsupportedSampleRate) {
			return 0, ErrUnsupportedSampleRate
		}
		return 0, err
	}
	return result, nil
}

// TruePeak returns the maximum reconstructed inter-sample peak across
// every channel, per ITU-R BS.1770-4 Annex 2's 4x oversampled
// polyphase reconstruction.
func (t *Track) TruePeak() float64 {
	return truepeak.MeasureStereo(toFloat64Channels(t.channels), t.sampleRate)
}

// RMS returns the linear root-mean-square amplitude across every
// channel — not a dB value, despite some documentation elsewhere
// describing an "RMS in dB" convention (see DESIGN.md, open question
// decision 3). Callers wanting decibels should pass the result
// through dsp/decibel.ToDB.
func (t *Track) RMS() float64 {
	var sumSq float64
	var n int
	for _, ch := range t.channels {
		for _, x := range ch {
			sumSq += float64(x) * float64(x)
		}
		n += len(ch)
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sumSq / float64(n))
}

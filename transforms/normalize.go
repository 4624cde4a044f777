// SPDX-License-Identifier: EPL-2.0

package transforms

import (
	"math"

	"github.com/broadcastgo/loudcore/dsp/decibel"
	"github.com/broadcastgo/loudcore/loudness"
	"github.com/broadcastgo/loudcore/truepeak"
)

// NormalizeLoudness measures the current integrated loudness and
// scales every sample by a single stereo-matched gain so the result
// sits at targetLUFS, unless that gain would push the true peak past
// peakLimitDBTP, in which case the gain is reduced to respect the
// ceiling instead. Silent input (measured loudness of -Inf) is
// returned unchanged.
//
// The spec's documented default (-1.5 dBTP) belongs at the Track
// method boundary, not here: this function always takes an explicit
// limit, matching §9's resolution of the source's default
// inconsistency (see DESIGN.md, decision 2).
func NormalizeLoudness(channels [][]float32, rate int, targetLUFS, peakLimitDBTP float64) ([][]float32, error) {
	current, err := loudness.Integrated(toFloat64(channels), rate)
	if err != nil {
		return nil, err
	}

	if math.IsInf(current, -1) {
		return cloneChannels(channels), nil
	}

	gainDB := targetLUFS - current
	gain := decibel.ToLinear(gainDB)

	peak := truepeak.MeasureStereo(toFloat64(channels), rate)
	limit := decibel.ToLinear(peakLimitDBTP)

	if peak*gain > limit && peak > 0 {
		gain = limit / peak
	}

	return GainLinear(channels, gain), nil
}

func toFloat64(channels [][]float32) [][]float64 {
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

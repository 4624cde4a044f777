// SPDX-License-Identifier: EPL-2.0

package transforms

import "github.com/broadcastgo/loudcore/dsp/decibel"

// Gain multiplies every sample in every channel by db_to_linear(db).
// No clipping is applied; headroom beyond [-1, 1] is permitted in the
// intermediate result.
func Gain(channels [][]float32, db float64) [][]float32 {
	return GainLinear(channels, decibel.ToLinear(db))
}

// GainLinear is Gain expressed directly as a linear multiplier,
// avoiding a dB round trip for callers (e.g. normalization) that
// already computed the multiplier in linear terms.
func GainLinear(channels [][]float32, factor float64) [][]float32 {
	f := float32(factor)

	out := make([][]float32, len(channels))
	for c, ch := range channels {
		dst := make([]float32, len(ch))
		for i, x := range ch {
			dst[i] = x * f
		}
		out[c] = dst
	}
	return out
}

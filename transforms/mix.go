// SPDX-License-Identifier: EPL-2.0

package transforms

import "github.com/broadcastgo/loudcore/dsp/decibel"

// Mix requires aChannels and bChannels to share a sample rate and
// channel count. The result's length is the longer of the two; the
// shorter is zero-extended. Each sample is a[i] + gain*b[i], where
// gain = db_to_linear(gainDB). Mixing with silence is a no-op on a.
func Mix(aChannels [][]float32, aRate int, bChannels [][]float32, bRate int, gainDB float64) ([][]float32, error) {
	if len(aChannels) != len(bChannels) {
		return nil, ErrChannelCountMismatch
	}
	if aRate != bRate {
		return nil, ErrSampleRateMismatch
	}

	gain := float32(decibel.ToLinear(gainDB))

	out := make([][]float32, len(aChannels))
	for c := range aChannels {
		a := aChannels[c]
		b := bChannels[c]

		n := len(a)
		if len(b) > n {
			n = len(b)
		}

		dst := make([]float32, n)
		for i := 0; i < n; i++ {
			var av, bv float32
			if i < len(a) {
				av = a[i]
			}
			if i < len(b) {
				bv = b[i]
			}
			dst[i] = av + gain*bv
		}
		out[c] = dst
	}
	return out, nil
}

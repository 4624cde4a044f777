// SPDX-License-Identifier: EPL-2.0

package transforms

// FadeIn multiplies the first floor(ms*rate/1000) samples of every
// channel by a linear ramp from 0 to 1; samples after the fade region
// are unchanged. A fade region longer than the track ramps the whole
// thing.
func FadeIn(channels [][]float32, rate, ms int) [][]float32 {
	out := cloneChannels(channels)
	n := fadeLength(out, rate, ms)

	for _, ch := range out {
		applyRamp(ch, n, false)
	}
	return out
}

// FadeOut multiplies the last floor(ms*rate/1000) samples of every
// channel by a linear ramp from 1 to 0; samples before the fade
// region are unchanged.
func FadeOut(channels [][]float32, rate, ms int) [][]float32 {
	out := cloneChannels(channels)
	n := fadeLength(out, rate, ms)

	for _, ch := range out {
		applyRamp(ch, n, true)
	}
	return out
}

func fadeLength(channels [][]float32, rate, ms int) int {
	n := msToSamples(ms, rate)
	if len(channels) == 0 {
		return n
	}

	length := len(channels[0])
	if n > length {
		n = length
	}
	if n < 0 {
		n = 0
	}
	return n
}

// applyRamp ramps the first n samples 0->1 (out=false) or the last n
// samples 1->0 (out=true).
func applyRamp(ch []float32, n int, out bool) {
	if n <= 0 {
		return
	}

	if out {
		start := len(ch) - n
		for i := 0; i < n; i++ {
			gain := float32(n-1-i) / float32(n)
			ch[start+i] *= gain
		}
		return
	}

	for i := 0; i < n; i++ {
		gain := float32(i) / float32(n)
		ch[i] *= gain
	}
}

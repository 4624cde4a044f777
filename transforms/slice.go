// SPDX-License-Identifier: EPL-2.0

package transforms

// Slice extracts samples in [floor(startMs*rate/1000), endSample)
// from every channel. endMs == nil means end-of-track. Out-of-range
// indices clamp to buffer bounds.
func Slice(channels [][]float32, rate, startMs int, endMs *int) [][]float32 {
	length := 0
	if len(channels) > 0 {
		length = len(channels[0])
	}

	start := msToSamples(startMs, rate)
	start = clamp(start, 0, length)

	end := length
	if endMs != nil {
		end = msToSamples(*endMs, rate)
	}
	end = clamp(end, 0, length)

	if end < start {
		end = start
	}

	out := make([][]float32, len(channels))
	for c, ch := range channels {
		out[c] = append([]float32(nil), ch[start:end]...)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

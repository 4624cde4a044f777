// SPDX-License-Identifier: EPL-2.0

package transforms

// Reverse mirrors every channel. reverse(reverse(track)) reproduces
// the original sample order.
func Reverse(channels [][]float32) [][]float32 {
	out := make([][]float32, len(channels))
	for c, ch := range channels {
		n := len(ch)
		dst := make([]float32, n)
		for i, x := range ch {
			dst[n-1-i] = x
		}
		out[c] = dst
	}
	return out
}

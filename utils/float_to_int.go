// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales it to a 16-bit PCM
// sample using the asymmetric convention used throughout this module:
// negative values scale by 32768, non-negative values scale by 32767,
// so the full int16 range is used without ever rounding -1 past
// math.MinInt16 or +1 past math.MaxInt16.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(math.Round(float64(x) * 32768.0))
	}
	return int16(math.Round(float64(x) * 32767.0))
}

// Int16ToFloat32 is the inverse scaling used when decoding PCM16
// samples back to the [-1, 1] float domain.
func Int16ToFloat32(x int16) float32 {
	if x < 0 {
		return float32(x) / 32768.0
	}
	return float32(x) / 32767.0
}

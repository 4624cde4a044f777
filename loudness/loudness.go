// SPDX-License-Identifier: EPL-2.0

// Package loudness measures integrated loudness (LUFS) per
// ITU-R BS.1770-4 / EBU R128: K-weighting, 400 ms gated blocks with
// 75% overlap, and dual absolute/relative gating.
//
// The block-power and gating math here is grounded on the pack's
// farcloser/haustorium loudness engine and CWBudde/algo-dsp meter,
// adapted from their streaming ring-buffer form to the whole-track
// batch form this core holds in memory (no streaming, per the core's
// Non-goals).
package loudness

import (
	"math"

	"github.com/broadcastgo/loudcore/dsp/kweighting"
)

const (
	absoluteGateLUFS  = -70.0
	relativeGateDelta = -10.0
	blockOverlap      = 0.75
)

// Integrated measures the integrated loudness of channels (one slice
// of samples per channel, all equal length) at rate, returning LUFS.
//
// Negative infinity is returned, not an error, when channels is
// empty, the track is silent, shorter than one 400 ms block, or every
// block is gated out. An error is returned only for an unsupported
// sample rate.
func Integrated(channels [][]float64, rate int) (float64, error) {
	if len(channels) == 0 {
		return math.Inf(-1), nil
	}

	weighted := make([][]float64, len(channels))
	for i, ch := range channels {
		w, err := kweighting.Apply(ch, rate)
		if err != nil {
			return 0, err
		}
		weighted[i] = w
	}

	powers := blockPowers(weighted, rate)
	if len(powers) == 0 {
		return math.Inf(-1), nil
	}

	gated := gate(powers)
	if gated == 0 {
		return math.Inf(-1), nil
	}

	return toLUFS(gated), nil
}

// blockPowers segments the K-weighted channels into 400 ms blocks
// advancing by 100 ms (75% overlap) and returns each block's
// channel-weighted mean-square power, in order.
func blockPowers(weighted [][]float64, rate int) []float64 {
	n := len(weighted[0])

	blockSize := int(0.4 * float64(rate))
	hop := int(float64(blockSize) * (1 - blockOverlap))
	if blockSize <= 0 || hop <= 0 {
		return nil
	}

	numChannels := len(weighted)

	var powers []float64

	for start := 0; start+blockSize <= n; start += hop {
		var blockPower float64

		for ch := 0; ch < numChannels; ch++ {
			weight := kweighting.ChannelWeight(ch, numChannels)
			if weight == 0 {
				continue
			}

			var sumSq float64
			samples := weighted[ch][start : start+blockSize]
			for _, s := range samples {
				sumSq += s * s
			}

			meanSquare := sumSq / float64(blockSize)
			blockPower += weight * meanSquare
		}

		powers = append(powers, blockPower)
	}

	return powers
}

// gate applies the dual absolute/relative gate of §4.4 and returns
// the integrated mean-square power of the surviving blocks, or 0 if
// every block was gated out.
func gate(powers []float64) float64 {
	absThreshold := powerAt(absoluteGateLUFS)

	var (
		sum   float64
		count int
	)

	for _, p := range powers {
		if p > absThreshold {
			sum += p
			count++
		}
	}

	if count == 0 {
		return 0
	}

	meanAfterAbsolute := sum / float64(count)
	relThreshold := powerAt(toLUFS(meanAfterAbsolute) + relativeGateDelta)

	sum, count = 0, 0

	for _, p := range powers {
		if p > absThreshold && p > relThreshold {
			sum += p
			count++
		}
	}

	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return math.Inf(-1)
	}
	return -0.691 + 10*math.Log10(meanSquare)
}

func powerAt(lufs float64) float64 {
	return math.Pow(10, (lufs+0.691)/10)
}

// SPDX-License-Identifier: EPL-2.0

// Package kweighting applies the ITU-R BS.1770-4 K-weighting filter
// cascade (a high-shelf pre-filter followed by the RLB high-pass) and
// exposes the per-channel power weights used in the LUFS gating sum.
//
// Coefficients are hard-coded full-precision tables for the two
// sample rates the loudness engine supports; any other rate is
// rejected with ErrUnsupportedSampleRate, following this module's
// package-level sentinel-error convention (see formats/wav's
// ErrInvalidWav) rather than a generic error type.
package kweighting

import (
	"errors"

	"github.com/broadcastgo/loudcore/dsp/biquad"
)

// ErrUnsupportedSampleRate is returned when K-weighting is requested
// at a sample rate other than 44100 or 48000 Hz.
var ErrUnsupportedSampleRate = errors.New("kweighting: unsupported sample rate")

// filters holds the pre-filter and RLB biquad coefficients for one
// supported sample rate, straight from the ITU-R BS.1770-4 tables.
type filters struct {
	pre biquad.Coefficients
	rlb biquad.Coefficients
}

var tables = map[int]filters{
	48000: {
		pre: biquad.Coefficients{
			B0: 1.53512485958697, B1: -2.69169618940638, B2: 1.19839281085285,
			A0: 1, A1: -1.69065929318241, A2: 0.73248077421585,
		},
		rlb: biquad.Coefficients{
			B0: 1, B1: -2, B2: 1,
			A0: 1, A1: -1.99004745483398, A2: 0.99007225036621,
		},
	},
	44100: {
		pre: biquad.Coefficients{
			B0: 1.5308412300498355, B1: -2.6509799951536985, B2: 1.1690790799210682,
			A0: 1, A1: -1.6636551132560204, A2: 0.7125954280732254,
		},
		rlb: biquad.Coefficients{
			B0: 1, B1: -2, B2: 1,
			A0: 1, A1: -1.9891696736297957, A2: 0.9891990357870394,
		},
	},
}

// Cascade is a fresh, zero-state pair of biquads (pre-filter then
// RLB) for one channel at one sample rate.
type Cascade struct {
	pre *biquad.Filter
	rlb *biquad.Filter
}

// NewCascade builds a fresh K-weighting cascade for rate. It fails
// with ErrUnsupportedSampleRate for any rate other than 44100/48000.
func NewCascade(rate int) (*Cascade, error) {
	t, ok := tables[rate]
	if !ok {
		return nil, ErrUnsupportedSampleRate
	}

	return &Cascade{
		pre: biquad.New(t.pre),
		rlb: biquad.New(t.rlb),
	}, nil
}

// Process runs the cascade (pre-filter, then RLB) over one sample.
func (c *Cascade) Process(x float64) float64 {
	return c.rlb.Process(c.pre.Process(x))
}

// Apply returns a new buffer of identical length containing
// rlb(pre(samples)). The cascade is fresh per call, matching the
// spec's "filters are fresh (zero-initial-state) per call" rule.
func Apply(samples []float64, rate int) ([]float64, error) {
	cascade, err := NewCascade(rate)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = cascade.Process(x)
	}
	return out, nil
}

// ChannelWeight returns the LUFS power-sum weight for channel index
// ch out of numChannels total channels.
//
//   - 1 or 2 channels: every channel weighs 1.0.
//   - 6 channels (5.1: L, R, C, LFE, Ls, Rs): LFE (index 3) weighs 0;
//     the two surround channels weigh 1.41253754462275; the rest 1.0.
//   - any other channel count: 1.0.
func ChannelWeight(ch, numChannels int) float64 {
	if numChannels == 6 {
		switch ch {
		case 3:
			return 0
		case 4, 5:
			return 1.41253754462275
		default:
			return 1.0
		}
	}
	return 1.0
}

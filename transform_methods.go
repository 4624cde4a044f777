// SPDX-License-Identifier: EPL-2.0

package loudcore

import (
	"errors"

	"github.com/broadcastgo/loudcore/dsp/kweighting"
	"github.com/broadcastgo/loudcore/transforms"
)

// Gain multiplies every sample by db_to_linear(db). No clipping is
// applied.
func (t *Track) Gain(db float64) *Track {
	return &Track{channels: transforms.Gain(t.channels, db), sampleRate: t.sampleRate}
}

// FadeIn ramps the first floor(ms*rate/1000) samples of every channel
// from 0 to 1.
func (t *Track) FadeIn(ms int) *Track {
	return &Track{channels: transforms.FadeIn(t.channels, t.sampleRate, ms), sampleRate: t.sampleRate}
}

// FadeOut ramps the last floor(ms*rate/1000) samples of every channel
// from 1 to 0.
func (t *Track) FadeOut(ms int) *Track {
	return &Track{channels: transforms.FadeOut(t.channels, t.sampleRate, ms), sampleRate: t.sampleRate}
}

// Slice extracts [startMs, endMs). A nil endMs means end-of-track.
// Out-of-range bounds clamp rather than error.
func (t *Track) Slice(startMs int, endMs *int) *Track {
	return &Track{channels: transforms.Slice(t.channels, t.sampleRate, startMs, endMs), sampleRate: t.sampleRate}
}

// Reverse mirrors every channel. Reverse(Reverse(t)) reproduces t's
// original sample order.
func (t *Track) Reverse() *Track {
	return &Track{channels: transforms.Reverse(t.channels), sampleRate: t.sampleRate}
}

// Concat requires t and other to share a sample rate and channel
// count. The result is t followed by other, per channel.
func (t *Track) Concat(other *Track) (*Track, error) {
	out, err := transforms.Concat(t.channels, t.sampleRate, other.channels, other.sampleRate)
	if err != nil {
		return nil, translateTransformErr(err)
	}
	return &Track{channels: out, sampleRate: t.sampleRate}, nil
}

// Mix requires t and other to share a sample rate and channel count.
// The result's length is the longer of the two; the shorter is
// zero-extended. gainDB scales other before summing.
func (t *Track) Mix(other *Track, gainDB float64) (*Track, error) {
	out, err := transforms.Mix(t.channels, t.sampleRate, other.channels, other.sampleRate, gainDB)
	if err != nil {
		return nil, translateTransformErr(err)
	}
	return &Track{channels: out, sampleRate: t.sampleRate}, nil
}

// Speed resamples every channel by rateFactor via linear
// interpolation, changing duration (and pitch) without changing the
// sample rate. rateFactor must be > 0.
func (t *Track) Speed(rateFactor float64) (*Track, error) {
	out, err := transforms.Speed(t.channels, rateFactor)
	if err != nil {
		return nil, translateTransformErr(err)
	}
	return &Track{channels: out, sampleRate: t.sampleRate}, nil
}

// TrimSilence finds the first and last windowed-RMS position that
// exceeds thresholdDB, pads by headMs/tailMs, and slices to it. If no
// position exceeds the threshold, t is returned observationally
// unchanged (but as a fresh Track).
func (t *Track) TrimSilence(thresholdDB float64, headMs, tailMs int) *Track {
	return &Track{channels: transforms.TrimSilence(t.channels, t.sampleRate, thresholdDB, headMs, tailMs), sampleRate: t.sampleRate}
}

// TrimSilenceDefault applies TrimSilence with the façade's documented
// defaults (-30 dBFS threshold, 10ms head, 50ms tail).
func (t *Track) TrimSilenceDefault() *Track {
	return t.TrimSilence(DefaultTrimThresholdDB, DefaultTrimHeadMs, DefaultTrimTailMs)
}

// NormalizeLoudness scales every sample by a single stereo-matched
// gain so t's integrated loudness reaches targetLUFS, reducing that
// gain instead when it would push the true peak past peakLimitDBTP.
// Silent input (loudness of -Inf) is returned unchanged.
func (t *Track) NormalizeLoudness(targetLUFS, peakLimitDBTP float64) (*Track, error) {
	out, err := transforms.NormalizeLoudness(t.channels, t.sampleRate, targetLUFS, peakLimitDBTP)
	if err != nil {
		if errors.Is(err, kweighting.ErrUnsupportedSampleRate) {
			return nil, ErrUnsupportedSampleRate
		}
		return nil, err
	}
	return &Track{channels: out, sampleRate: t.sampleRate}, nil
}

// NormalizeLoudnessDefault applies NormalizeLoudness with the
// façade's documented defaults (-14 LUFS target, -1.5 dBTP ceiling).
func (t *Track) NormalizeLoudnessDefault() (*Track, error) {
	return t.NormalizeLoudness(DefaultNormalizeTargetLUFS, DefaultNormalizePeakLimitDBTP)
}

func translateTransformErr(err error) error {
	switch {
	case errors.Is(err, transforms.ErrChannelCountMismatch):
		return ErrChannelCountMismatch
	case errors.Is(err, transforms.ErrSampleRateMismatch):
		return ErrSampleRateMismatch
	case errors.Is(err, transforms.ErrInvalidSpeedRate):
		return ErrInvalidSpeedRate
	default:
		return err
	}
}

// SPDX-License-Identifier: EPL-2.0

package loudcore

// Defaults mirror the façade's documented configuration table; every
// tunable remains an explicit argument, these are just the values
// used when a caller asks for the *Default variant of an operation or
// passes the zero value to Silence.
const (
	// DefaultSampleRate is used by Silence when rate <= 0.
	DefaultSampleRate = 44100
	// DefaultChannels is used by Silence when numChannels <= 0.
	DefaultChannels = 1

	// DefaultNormalizeTargetLUFS is NormalizeLoudnessDefault's target.
	DefaultNormalizeTargetLUFS = -14.0
	// DefaultNormalizePeakLimitDBTP is NormalizeLoudnessDefault's true
	// peak ceiling. The distilled source's inner helper defaults to
	// -1 dBTP; -1.5 is the documented EBU R128 value this façade uses
	// (see DESIGN.md, open question decision 2).
	DefaultNormalizePeakLimitDBTP = -1.5

	// DefaultTrimThresholdDB is TrimSilenceDefault's signal threshold.
	DefaultTrimThresholdDB = -30.0
	// DefaultTrimHeadMs is the padding kept before the first sample
	// that exceeds the threshold.
	DefaultTrimHeadMs = 10
	// DefaultTrimTailMs is the padding kept after the last sample that
	// exceeds the threshold.
	DefaultTrimTailMs = 50

	// DefaultMP3Bitrate is ToMP3Default's encoding bitrate in kbps. It
	// is also the only bitrate ToMP3 currently accepts; see
	// formats/mp3.SupportedBitrate.
	DefaultMP3Bitrate = 128
)

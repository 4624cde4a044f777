// SPDX-License-Identifier: EPL-2.0

// Package loudcore measures and adjusts the perceptual loudness of
// decoded PCM audio. It implements ITU-R BS.1770-4 / EBU R128
// integrated loudness, true-peak detection, and a family of
// loudness-preserving transforms (gain, fades, slice, reverse,
// concat, mix, speed, silence trimming, loudness normalization)
// behind an immutable Track façade.
//
// # Quick Start
//
//	data, _ := os.ReadFile("input.wav")
//	track, err := loudcore.FromBuffer(data)
//	if err != nil {
//	    // handle error
//	}
//
//	lufs, _ := track.Loudness()
//	normalized, err := track.NormalizeLoudnessDefault()
//	if err != nil {
//	    // handle error
//	}
//
//	wavBytes, _ := normalized.ToWAV()
//
// # Constructing Tracks
//
// Three factories build a Track:
//
//	track, err := loudcore.FromBuffer(fileBytes)              // sniffs WAV/AIFF/Vorbis, falls back to MP3
//	track, err := loudcore.FromChannels(channels, 48000)      // from raw float32 channel buffers
//	track, err := loudcore.Silence(500, 44100, 1)             // 500ms of silence
//
// FromBuffer delegates compressed formats to formats/mp3 and
// formats/vorbis, and containers to formats/wav and formats/aiff; see
// DefaultRegistry to register additional codecs.
//
// # Measurement
//
//	lufs, err := track.Loudness()   // integrated loudness in LUFS, -Inf for silence
//	peak := track.TruePeak()        // linear true peak across channels
//	rms := track.RMS()              // linear RMS amplitude
//
// # Transforms
//
// Every transform returns a new Track; the receiver is never
// mutated:
//
//	louder := track.Gain(3)
//	faded := track.FadeIn(250).FadeOut(500)
//	clip := track.Slice(1000, nil)
//	joined, err := a.Concat(b)
//	blended, err := a.Mix(b, -6)
//	slower, err := track.Speed(0.5)
//	trimmed := track.TrimSilenceDefault()
//	normalized, err := track.NormalizeLoudnessDefault()
//
// # Export
//
//	wavBytes, err := track.ToWAV()
//	mp3Bytes, err := track.ToMP3Default()
//	channels := track.ToPCM()
//
// # Error Handling
//
// Every exported error is a package-level sentinel checkable with
// errors.Is (ErrChannelCountMismatch, ErrSampleRateMismatch,
// ErrChannelIndexOutOfRange, ErrInvalidSpeedRate, ErrInvalidWav,
// ErrDecodeFailed, ErrUnsupportedSampleRate, and others declared in
// errors.go). Negative infinity returned from Loudness is a sentinel
// value for silence or too-short audio, not an error.
package loudcore

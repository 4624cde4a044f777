// SPDX-License-Identifier: EPL-2.0

package loudcore_test

import (
	"errors"
	"math"
	"testing"

	"github.com/broadcastgo/loudcore"
)

func sineTrack(t *testing.T, rate int, seconds, freq, amplitude float64) *loudcore.Track {
	n := int(float64(rate) * seconds)
	ch := make([]float32, n)
	for i := range ch {
		tm := float64(i) / float64(rate)
		ch[i] = float32(amplitude * math.Sin(2*math.Pi*freq*tm))
	}
	track, err := loudcore.FromChannels([][]float32{ch}, rate)
	if err != nil {
		t.Fatalf("FromChannels() err = %v", err)
	}
	return track
}

func TestTrack_Loudness_FullScaleSineInRange(t *testing.T) {
	t.Parallel()

	track := sineTrack(t, 48000, 1.0, 997, 1.0)
	lufs, err := track.Loudness()
	if err != nil {
		t.Fatalf("Loudness() err = %v", err)
	}

	if lufs < -3.5 || lufs > -2.5 {
		t.Errorf("Loudness() = %v, want in [-3.5, -2.5]", lufs)
	}
}

func TestTrack_Loudness_UnsupportedSampleRate(t *testing.T) {
	t.Parallel()

	track, err := loudcore.FromChannels([][]float32{{0, 0, 0}}, 22050)
	if err != nil {
		t.Fatalf("FromChannels() err = %v", err)
	}

	_, err = track.Loudness()
	if !errors.Is(err, loudcore.ErrUnsupportedSampleRate) {
		t.Fatalf("Loudness() err = %v, want ErrUnsupportedSampleRate", err)
	}
}

func TestTrack_Loudness_SilenceIsNegativeInfinity(t *testing.T) {
	t.Parallel()

	track, err := loudcore.Silence(1000, 48000, 1)
	if err != nil {
		t.Fatalf("Silence() err = %v", err)
	}

	lufs, err := track.Loudness()
	if err != nil {
		t.Fatalf("Loudness() err = %v", err)
	}
	if !math.IsInf(lufs, -1) {
		t.Errorf("Loudness() = %v, want -Inf", lufs)
	}
}

func TestTrack_TruePeak_SingleFullScaleSample(t *testing.T) {
	t.Parallel()

	ch := make([]float32, 1024)
	ch[512] = 1.0

	track, err := loudcore.FromChannels([][]float32{ch}, 48000)
	if err != nil {
		t.Fatalf("FromChannels() err = %v", err)
	}

	if peak := track.TruePeak(); peak < 1.0 {
		t.Errorf("TruePeak() = %v, want >= 1.0", peak)
	}
}

func TestTrack_RMS_IsLinearAmplitude(t *testing.T) {
	t.Parallel()

	track, err := loudcore.FromChannels([][]float32{{1, -1, 1, -1}}, 44100)
	if err != nil {
		t.Fatalf("FromChannels() err = %v", err)
	}

	if rms := track.RMS(); rms != 1.0 {
		t.Errorf("RMS() = %v, want 1.0", rms)
	}
}

func TestTrack_RMS_SilenceIsZero(t *testing.T) {
	t.Parallel()

	track, err := loudcore.Silence(100, 44100, 1)
	if err != nil {
		t.Fatalf("Silence() err = %v", err)
	}

	if rms := track.RMS(); rms != 0 {
		t.Errorf("RMS() = %v, want 0", rms)
	}
}

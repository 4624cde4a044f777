// SPDX-License-Identifier: EPL-2.0

package loudness

import (
	"errors"
	"math"
	"testing"

	"github.com/broadcastgo/loudcore/dsp/kweighting"
)

func sineWave(rate int, seconds float64, freq, amplitude float64) []float64 {
	n := int(float64(rate) * seconds)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		out[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}
	return out
}

func TestIntegrated_FullScaleSine48k(t *testing.T) {
	t.Parallel()

	ch := sineWave(48000, 1.0, 997, 1.0)

	lufs, err := Integrated([][]float64{ch}, 48000)
	if err != nil {
		t.Fatalf("Integrated() err = %v", err)
	}

	if lufs < -3.5 || lufs > -2.5 {
		t.Errorf("Integrated() = %v LUFS, want in [-3.5, -2.5]", lufs)
	}
}

func TestIntegrated_Minus20dBSine48k(t *testing.T) {
	t.Parallel()

	amplitude := math.Pow(10, -20.0/20.0)
	ch := sineWave(48000, 1.0, 997, amplitude)

	lufs, err := Integrated([][]float64{ch}, 48000)
	if err != nil {
		t.Fatalf("Integrated() err = %v", err)
	}

	if lufs < -23.5 || lufs > -22.5 {
		t.Errorf("Integrated() = %v LUFS, want in [-23.5, -22.5]", lufs)
	}
}

func TestIntegrated_SilenceIsNegativeInfinity(t *testing.T) {
	t.Parallel()

	ch := make([]float64, 48000)

	lufs, err := Integrated([][]float64{ch}, 48000)
	if err != nil {
		t.Fatalf("Integrated() err = %v", err)
	}

	if !math.IsInf(lufs, -1) {
		t.Errorf("Integrated(silence) = %v, want -Inf", lufs)
	}
}

func TestIntegrated_TooShortIsNegativeInfinity(t *testing.T) {
	t.Parallel()

	ch := sineWave(48000, 0.1, 997, 1.0) // 100ms, shorter than a 400ms block

	lufs, err := Integrated([][]float64{ch}, 48000)
	if err != nil {
		t.Fatalf("Integrated() err = %v", err)
	}

	if !math.IsInf(lufs, -1) {
		t.Errorf("Integrated(too short) = %v, want -Inf", lufs)
	}
}

func TestIntegrated_UnsupportedSampleRate(t *testing.T) {
	t.Parallel()

	ch := sineWave(22050, 1.0, 997, 1.0)

	_, err := Integrated([][]float64{ch}, 22050)
	if !errors.Is(err, kweighting.ErrUnsupportedSampleRate) {
		t.Fatalf("Integrated() err = %v, want ErrUnsupportedSampleRate", err)
	}
}

func TestIntegrated_EmptyChannelsIsNegativeInfinity(t *testing.T) {
	t.Parallel()

	lufs, err := Integrated(nil, 48000)
	if err != nil {
		t.Fatalf("Integrated() err = %v", err)
	}
	if !math.IsInf(lufs, -1) {
		t.Errorf("Integrated(nil) = %v, want -Inf", lufs)
	}
}

func TestIntegrated_StereoVsMonoConsistency(t *testing.T) {
	t.Parallel()

	mono := sineWave(48000, 2.0, 997, 0.5)

	monoLUFS, err := Integrated([][]float64{mono}, 48000)
	if err != nil {
		t.Fatalf("mono Integrated() err = %v", err)
	}

	stereoLUFS, err := Integrated([][]float64{mono, mono}, 48000)
	if err != nil {
		t.Fatalf("stereo Integrated() err = %v", err)
	}

	diff := stereoLUFS - monoLUFS
	want := 10 * math.Log10(2)

	if math.Abs(diff-want) > 0.1 {
		t.Errorf("stereo-mono delta = %v LU, want ≈%v LU", diff, want)
	}
}

func TestIntegrated_CrossRateConsistency(t *testing.T) {
	t.Parallel()

	l44, err := Integrated([][]float64{sineWave(44100, 2.0, 997, 0.5)}, 44100)
	if err != nil {
		t.Fatalf("44100 Integrated() err = %v", err)
	}

	l48, err := Integrated([][]float64{sineWave(48000, 2.0, 997, 0.5)}, 48000)
	if err != nil {
		t.Fatalf("48000 Integrated() err = %v", err)
	}

	if math.Abs(l44-l48) > 0.5 {
		t.Errorf("cross-rate delta = %v LU, want within 0.5 LU (44.1k=%v, 48k=%v)", l44-l48, l44, l48)
	}
}

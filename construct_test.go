// SPDX-License-Identifier: EPL-2.0

package loudcore_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/broadcastgo/loudcore"
	"github.com/broadcastgo/loudcore/formats/wav"
)

func TestFromChannels_EmptyChannels(t *testing.T) {
	t.Parallel()

	if _, err := loudcore.FromChannels(nil, 44100); !errors.Is(err, loudcore.ErrEmptyChannels) {
		t.Fatalf("FromChannels(nil) err = %v, want ErrEmptyChannels", err)
	}
}

func TestFromChannels_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := loudcore.FromChannels([][]float32{{1, 2, 3}, {1, 2}}, 44100)
	if !errors.Is(err, loudcore.ErrChannelLengthMismatch) {
		t.Fatalf("FromChannels() err = %v, want ErrChannelLengthMismatch", err)
	}
}

func TestFromChannels_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	_, err := loudcore.FromChannels([][]float32{{1}}, 0)
	if !errors.Is(err, loudcore.ErrInvalidSampleRate) {
		t.Fatalf("FromChannels() err = %v, want ErrInvalidSampleRate", err)
	}
}

func TestFromChannels_CopiesInput(t *testing.T) {
	t.Parallel()

	ch := []float32{1, 2, 3}
	track, err := loudcore.FromChannels([][]float32{ch}, 44100)
	if err != nil {
		t.Fatalf("FromChannels() err = %v", err)
	}

	ch[0] = 99
	got, _ := track.GetChannel(0)
	if got[0] == 99 {
		t.Fatal("FromChannels() aliased the caller's buffer")
	}
}

func TestSilence_DefaultsApplied(t *testing.T) {
	t.Parallel()

	track, err := loudcore.Silence(100, 0, 0)
	if err != nil {
		t.Fatalf("Silence() err = %v", err)
	}

	if track.SampleRate() != loudcore.DefaultSampleRate {
		t.Errorf("SampleRate() = %d, want %d", track.SampleRate(), loudcore.DefaultSampleRate)
	}
	if track.ChannelCount() != loudcore.DefaultChannels {
		t.Errorf("ChannelCount() = %d, want %d", track.ChannelCount(), loudcore.DefaultChannels)
	}
	if track.Length() != loudcore.DefaultSampleRate/10 {
		t.Errorf("Length() = %d, want %d", track.Length(), loudcore.DefaultSampleRate/10)
	}
}

func TestSilence_IsAllZero(t *testing.T) {
	t.Parallel()

	track, err := loudcore.Silence(50, 48000, 2)
	if err != nil {
		t.Fatalf("Silence() err = %v", err)
	}

	for c := 0; c < track.ChannelCount(); c++ {
		ch, _ := track.GetChannel(c)
		for i, x := range ch {
			if x != 0 {
				t.Fatalf("Silence()[%d][%d] = %v, want 0", c, i, x)
			}
		}
	}
}

func TestFromBuffer_WAVRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	left := []float32{0.5, -0.5, 0.25, -0.25}
	if err := wav.Encode(&buf, [][]float32{left}, 44100); err != nil {
		t.Fatalf("wav.Encode() err = %v", err)
	}

	track, err := loudcore.FromBuffer(buf.Bytes())
	if err != nil {
		t.Fatalf("FromBuffer() err = %v", err)
	}

	if track.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", track.SampleRate())
	}
	if track.ChannelCount() != 1 {
		t.Errorf("ChannelCount() = %d, want 1", track.ChannelCount())
	}
	if track.Length() != len(left) {
		t.Errorf("Length() = %d, want %d", track.Length(), len(left))
	}
}

func TestFromBuffer_InvalidWav(t *testing.T) {
	t.Parallel()

	data := append([]byte("RIFF"), make([]byte, 4)...)
	data = append(data, []byte("WAVE")...)

	_, err := loudcore.FromBuffer(data)
	if !errors.Is(err, loudcore.ErrInvalidWav) {
		t.Fatalf("FromBuffer() err = %v, want ErrInvalidWav", err)
	}
}

func TestFromBuffer_GarbageFallsBackToMP3Decoder(t *testing.T) {
	t.Parallel()

	_, err := loudcore.FromBuffer([]byte("not any known audio container"))
	if err == nil {
		t.Fatal("FromBuffer() err = nil, want a decode error")
	}
	if !errors.Is(err, loudcore.ErrDecodeFailed) {
		t.Fatalf("FromBuffer() err = %v, want ErrDecodeFailed", err)
	}
}

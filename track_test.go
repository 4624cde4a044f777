// SPDX-License-Identifier: EPL-2.0

package loudcore_test

import (
	"errors"
	"testing"
	"time"

	"github.com/broadcastgo/loudcore"
)

func TestTrack_DerivedProperties(t *testing.T) {
	t.Parallel()

	track, err := loudcore.FromChannels([][]float32{{0, 0, 0, 0}, {0, 0, 0, 0}}, 44100)
	if err != nil {
		t.Fatalf("FromChannels() err = %v", err)
	}

	if got := track.ChannelCount(); got != 2 {
		t.Errorf("ChannelCount() = %d, want 2", got)
	}
	if got := track.Length(); got != 4 {
		t.Errorf("Length() = %d, want 4", got)
	}
	if got := track.SampleRate(); got != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", got)
	}

	seconds := 4.0 / 44100.0
	want := time.Duration(seconds * float64(time.Second))
	if got := track.Duration(); got != want {
		t.Errorf("Duration() = %v, want %v", got, want)
	}
}

func TestTrack_GetChannelCopiesAndBoundsChecks(t *testing.T) {
	t.Parallel()

	track, err := loudcore.FromChannels([][]float32{{1, 2, 3}}, 44100)
	if err != nil {
		t.Fatalf("FromChannels() err = %v", err)
	}

	ch, err := track.GetChannel(0)
	if err != nil {
		t.Fatalf("GetChannel(0) err = %v", err)
	}
	ch[0] = 99
	again, _ := track.GetChannel(0)
	if again[0] == 99 {
		t.Fatal("GetChannel() returned an aliased slice")
	}

	if _, err := track.GetChannel(1); !errors.Is(err, loudcore.ErrChannelIndexOutOfRange) {
		t.Fatalf("GetChannel(1) err = %v, want ErrChannelIndexOutOfRange", err)
	}
	if _, err := track.GetChannel(-1); !errors.Is(err, loudcore.ErrChannelIndexOutOfRange) {
		t.Fatalf("GetChannel(-1) err = %v, want ErrChannelIndexOutOfRange", err)
	}
}

// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	"github.com/braheezy/shine-mp3/pkg/mp3"

	"github.com/broadcastgo/loudcore/utils"
)

// SupportedBitrate is the only bitrate (kbps) Encode can actually
// produce. shine-mp3's NewEncoder derives Mpeg.BitrateIndex and the
// frame's whole/fractional slot counts from its hardcoded
// Mpeg.Bitrate = 128 at construction time (layer3.go); nothing in
// Write's encode path re-derives them from Mpeg.Bitrate afterward, so
// assigning a different value post-construction changes nothing about
// the encoded stream. Until shine-mp3 exposes a bitrate-aware
// constructor, any other value is rejected outright rather than
// silently encoding at 128 anyway.
const SupportedBitrate = 128

// Encode interleaves channels to int16 PCM with the asymmetric
// scaling documented on utils.Float32ToInt16 and encodes them to MP3
// via github.com/braheezy/shine-mp3. bitrate must equal
// SupportedBitrate. Every channel must carry the same number of
// samples.
func Encode(w io.Writer, channels [][]float32, rate, bitrate int) error {
	if bitrate != SupportedBitrate {
		return fmt.Errorf("%w: %d kbps (only %d is supported)", ErrUnsupportedBitrate, bitrate, SupportedBitrate)
	}

	numChannels := len(channels)
	if numChannels == 0 {
		numChannels = 1
	}

	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	pcm := make([]int16, frames*numChannels)
	for f := 0; f < frames; f++ {
		for c, ch := range channels {
			pcm[f*numChannels+c] = utils.Float32ToInt16(ch[f])
		}
	}

	enc := mp3.NewEncoder(rate, numChannels)
	if err := enc.Write(w, pcm); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

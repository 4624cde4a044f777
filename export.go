// SPDX-License-Identifier: EPL-2.0

package loudcore

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/broadcastgo/loudcore/formats/mp3"
	"github.com/broadcastgo/loudcore/formats/wav"
)

// ToWAV serializes t as a canonical 16-bit PCM RIFF/WAVE file.
func (t *Track) ToWAV() ([]byte, error) {
	var buf bytes.Buffer
	if err := wav.Encode(&buf, t.channels, t.sampleRate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return buf.Bytes(), nil
}

// ToMP3 serializes t as an MP3 file encoded at bitrate kbps. bitrate
// must equal DefaultMP3Bitrate; any other value returns
// ErrUnsupportedBitrate rather than silently encoding at the default
// anyway (see formats/mp3.SupportedBitrate).
func (t *Track) ToMP3(bitrate int) ([]byte, error) {
	var buf bytes.Buffer
	if err := mp3.Encode(&buf, t.channels, t.sampleRate, bitrate); err != nil {
		if errors.Is(err, mp3.ErrUnsupportedBitrate) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedBitrate, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return buf.Bytes(), nil
}

// ToMP3Default serializes t as an MP3 file at DefaultMP3Bitrate.
func (t *Track) ToMP3Default() ([]byte, error) {
	return t.ToMP3(DefaultMP3Bitrate)
}

// ToPCM copies out t's channel buffers, one slice per channel.
func (t *Track) ToPCM() [][]float32 {
	out := make([][]float32, len(t.channels))
	for i, ch := range t.channels {
		out[i] = append([]float32(nil), ch...)
	}
	return out
}

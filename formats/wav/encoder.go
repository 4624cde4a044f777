// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/broadcastgo/loudcore/utils"
)

// Encode writes channels as a canonical PCM 16-bit WAV file: a
// 44-byte header (RIFF/WAVE, a 16-byte "fmt " chunk, and a "data"
// chunk header) followed by interleaved int16 samples. Every channel
// must carry the same number of samples. Float samples are converted
// with utils.Float32ToInt16's asymmetric scaling after clamping to
// [-1, 1].
func Encode(w io.Writer, channels [][]float32, rate int) error {
	numChannels := uint16(len(channels))
	if numChannels == 0 {
		numChannels = 1
	}

	frames := 0
	if len(channels) > 0 {
		frames = len(channels[0])
	}

	const bitsPerSample = uint16(16)
	byteRate := uint32(rate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	dataSize := uint32(frames) * uint32(numChannels) * 2
	riffSize := 36 + dataSize

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(rate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if frames == 0 {
		return nil
	}

	const frameChunk = 4096
	buf := make([]byte, 0, frameChunk*int(numChannels)*2)

	for start := 0; start < frames; start += frameChunk {
		end := min(start+frameChunk, frames)
		buf = buf[:0]

		for f := start; f < end; f++ {
			for _, ch := range channels {
				v := utils.Float32ToInt16(ch[f])
				buf = append(buf, byte(v), byte(v>>8))
			}
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

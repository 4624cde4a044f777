// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding and encoding.
//
// Decoding uses github.com/hajimehoshi/go-mp3; encoding uses
// github.com/braheezy/shine-mp3. Together they cover both directions
// of the to_mp3 / from_buffer round trip this module's export path
// needs.
//
// # Supported Formats
//
// The decoder supports:
//   - MP3 (MPEG-1 Audio Layer 3)
//   - Various bitrates
//   - Stereo output (go-mp3 always decodes to stereo)
//
// # Decoding MP3 Files
//
// Use the Decoder to read MP3 files:
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Encoding MP3 Files
//
//	channels := [][]float32{left, right}
//	file, _ := os.Create("output.mp3")
//	err := mp3.Encode(file, channels, 44100, mp3.SupportedBitrate)
//
// Encode interleaves channels to int16 PCM using the same asymmetric
// scaling as formats/wav before handing the frames to the shine
// encoder. Unlike decoding, encoding is fixed at SupportedBitrate (128
// kbps): shine-mp3's encoder bakes its bitrate into internal frame
// bookkeeping at construction time, so Encode rejects any other value
// with ErrUnsupportedBitrate rather than silently ignoring it.
//
// # Output Format
//
// MP3 decoder output:
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (stereo)
//   - Sample rate: depends on the MP3 file (typically 44.1kHz or 48kHz)
//
// To convert to mono, use the audio package's MonoMixer.
package mp3

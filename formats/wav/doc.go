// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding walks the real RIFF chunk layout via github.com/go-audio/wav
// rather than assuming a canonical 44-byte header, so files carrying
// extra metadata chunks (LIST, INFO, and the like) still decode
// correctly. Encoding always produces the canonical 44-byte header
// this module's export path promises.
//
// # Supported Formats
//
// Currently supported:
//   - 16-bit samples only on decode; the fmt chunk may name integer
//     PCM or IEEE float, but any bit depth other than 16 (such as
//     ordinary 32-bit float files) is rejected
//   - Mono and multi-channel, any channel count
//   - Any sample rate
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// Use Encode to create WAV files from one or more channel buffers:
//
//	channels := [][]float32{left, right}
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, channels, 44100)
//
// Encode converts float32 samples to int16 PCM using the asymmetric
// scaling convention documented on utils.Float32ToInt16, interleaving
// channels in the order given.
//
// # Error Handling
//
// The package defines several sentinel errors:
//   - ErrInvalidWav: the input is missing RIFF/WAVE or is too short
//   - ErrOnlyPCM16bitSupported: only 16-bit PCM is supported
//   - ErrUnsupportedWavLayout: the chunk layout could not be parsed
//   - ErrUnsupportedWavChunks: the fmt chunk names an unsupported codec
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if err == wav.ErrInvalidWav {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
// WAV files written by Encode consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk (24 bytes): audio format, sample rate, channels, bit depth
//   - data chunk: interleaved int16 samples
package wav

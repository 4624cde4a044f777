// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level streaming primitives that feed
// a Track: the Source interface every format decoder implements, a
// Decoder/Registry pair for dispatching by format, and a channel
// reducer for collapsing exotic channel counts down to the mono or
// stereo layout the rest of this module requires.
//
// # Source Interface
//
// The Source interface is the foundation of audio ingestion:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Every format decoder in formats/ produces a Source; callers drain
// it into channel buffers to build a Track.
//
// # Channel Reduction
//
// MonoMixer converts multi-channel audio to mono by averaging all
// channels together:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// This is used at ingest time when a decoded source reports more
// channels than this module's mono/stereo invariant allows.
//
// # Format Registry
//
// The registry allows dynamic decoder registration beyond the formats
// this module ships with:
//
//	registry := audio.NewRegistry()
//	registry.Register("flac", flacDecoder{})
//	decoder, _ := registry.Get("flac")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// # Error Handling
//
// Source.ReadSamples returns io.EOF when no more data is available.
// Other errors indicate problems with the underlying stream:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio

// SPDX-License-Identifier: EPL-2.0

// Package audio defines the narrow interfaces the format decoders and
// the root Track façade share: a pull-based PCM Source, a Decoder that
// produces one from a reader, and a Registry decoders can be looked up
// from by format key.
package audio

import (
	"io"
	"sync"
)

// Source is a decoded PCM stream. Every format package (wav, aiff,
// mp3, vorbis) returns one from its Decoder, and construct.go drains
// one into a Track's channel buffers.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels reports channel count (1 = mono, 2 = stereo, or more
	// for sources construct.go will downmix before building a Track).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in
	// [-1,1] and returns the count of values written (not frames).
	// n == 0 with err == io.EOF marks the end of the stream.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize reports the decoder's internal read-buffer capacity in
	// samples, mostly useful for tests asserting it was initialized.
	BufSize() int

	// Close releases any resources held by the underlying reader.
	Close() error
}

// Decoder constructs a Source from an input reader. Each format
// package implements exactly one.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys ("wav", "mp3", "ogg vorbis", ...) to the
// Decoder that handles them. FromBuffer's sniff branch only covers the
// containers distinguishable from their first bytes; a Registry is the
// extension point for anything else.
type Registry struct {
	mtx    sync.Mutex
	codecs map[string]Decoder
}

// NewRegistry returns an empty, ready-to-use Registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register associates format with d, replacing any prior registration.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

// Get looks up the Decoder registered for format.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

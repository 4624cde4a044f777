// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/broadcastgo/loudcore/audio"
)

// oggReader is the subset of oggvorbis.Reader this source relies on,
// narrowed to allow substituting a fake in tests.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// source wraps an oggvorbis.Reader to implement audio.Source.
// oggvorbis.Reader.Read already produces float32 samples in [-1, 1],
// so this source's only job is the frames-vs-samples bookkeeping
// ReadSamples' interleaved-sample contract requires.
type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	frameBuf   []float32
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	framesRequested := len(dst) / s.channels
	samplesRequested := framesRequested * s.channels

	if cap(s.frameBuf) < samplesRequested {
		s.frameBuf = make([]float32, samplesRequested)
	}
	s.frameBuf = s.frameBuf[:samplesRequested]

	framesRead, err := s.dec.Read(s.frameBuf)
	if framesRead == 0 {
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, nil
	}

	samplesRead := framesRead * s.channels
	copy(dst, s.frameBuf[:samplesRead])

	return samplesRead, err
}

// Decoder decodes Ogg Vorbis streams via jfreymuth/oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		frameBuf:   make([]float32, 4096),
	}, nil
}

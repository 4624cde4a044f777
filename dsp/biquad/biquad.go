// SPDX-License-Identifier: EPL-2.0

// Package biquad implements a Direct-Form-I second-order IIR filter
// section, the building block that K-weighting cascades two of per
// channel.
package biquad

// Coefficients holds the six raw biquad coefficients as given by a
// filter design step, before a0-normalization.
type Coefficients struct {
	B0, B1, B2 float64
	A0, A1, A2 float64
}

// Filter is a stateful Direct-Form-I biquad section. Coefficients are
// normalized by A0 once, at construction; state (two previous inputs,
// two previous outputs) starts at zero.
type Filter struct {
	b0, b1, b2 float64
	a1, a2     float64

	x1, x2 float64
	y1, y2 float64
}

// New normalizes c by c.A0 and returns a fresh, zero-state filter.
func New(c Coefficients) *Filter {
	return &Filter{
		b0: c.B0 / c.A0,
		b1: c.B1 / c.A0,
		b2: c.B2 / c.A0,
		a1: c.A1 / c.A0,
		a2: c.A2 / c.A0,
	}
}

// Process filters a single sample, advancing internal state.
func (f *Filter) Process(x float64) float64 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2

	f.x2 = f.x1
	f.x1 = x
	f.y2 = f.y1
	f.y1 = y

	return y
}

// ProcessBuffer filters src into a freshly allocated buffer of equal
// length. It is equivalent to calling Process for every sample in
// order, and is required to be bit-equal to that sequential form.
func (f *Filter) ProcessBuffer(src []float64) []float64 {
	dst := make([]float64, len(src))
	for i, x := range src {
		dst[i] = f.Process(x)
	}
	return dst
}

// Reset zeroes the filter's state without changing its coefficients.
func (f *Filter) Reset() {
	f.x1, f.x2 = 0, 0
	f.y1, f.y2 = 0, 0
}

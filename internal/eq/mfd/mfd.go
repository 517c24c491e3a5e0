// Package mfd provides the magnitude-frequency sequence value type consumed
// by earthquake sources.  Construction of particular distribution shapes
// (Gutenberg-Richter, single, etc.) happens upstream; sources only index and
// scale the x/y arrays.
package mfd

import (
	"github.com/GeoNet/hazard/internal/eq"
)

// A Sequence pairs ascending magnitude bins with annual occurrence rates.
// The Floats flag marks distributions whose ruptures should float across a
// fault surface rather than fill it.  Sequences are immutable.
type Sequence struct {
	mags   []float64
	rates  []float64
	floats bool
}

// NewSequence validates and copies the supplied magnitude and rate arrays.
// Magnitudes must be ascending and unique and each must have a rate.
func NewSequence(mags, rates []float64, floats bool) (*Sequence, error) {
	if len(mags) == 0 {
		return nil, eq.ConfigErrorf("mfd has no magnitudes")
	}
	if len(mags) != len(rates) {
		return nil, eq.ConfigErrorf("mfd has %d magnitudes but %d rates", len(mags), len(rates))
	}
	for i := 1; i < len(mags); i++ {
		if mags[i] <= mags[i-1] {
			return nil, eq.ConfigErrorf("mfd magnitudes not ascending at index %d", i)
		}
	}
	s := &Sequence{
		mags:   append([]float64(nil), mags...),
		rates:  append([]float64(nil), rates...),
		floats: floats,
	}
	return s, nil
}

// Len returns the number of magnitude bins.
func (s *Sequence) Len() int {
	return len(s.mags)
}

// Mag returns the magnitude of bin i.
func (s *Sequence) Mag(i int) float64 {
	return s.mags[i]
}

// Rate returns the annual rate of bin i.
func (s *Sequence) Rate(i int) float64 {
	return s.rates[i]
}

// Floats reports whether ruptures for this distribution float across their
// parent surface.
func (s *Sequence) Floats() bool {
	return s.floats
}

// Mags returns a copy of the magnitude array.
func (s *Sequence) Mags() []float64 {
	return append([]float64(nil), s.mags...)
}

// Scaled returns a new Sequence with all rates multiplied by f.
func (s *Sequence) Scaled(f float64) *Sequence {
	rates := make([]float64, len(s.rates))
	for i, r := range s.rates {
		rates[i] = r * f
	}
	return &Sequence{mags: append([]float64(nil), s.mags...), rates: rates, floats: s.floats}
}

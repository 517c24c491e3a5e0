package mfd_test

import (
	"errors"
	"testing"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/eq/mfd"
)

func TestNewSequence(t *testing.T) {
	s, err := mfd.NewSequence([]float64{6.5, 7.0, 7.5}, []float64{1e-3, 1e-4, 1e-5}, true)
	if err != nil {
		t.Fatal(err)
	}

	if s.Len() != 3 {
		t.Errorf("expected 3 bins got %d", s.Len())
	}
	if s.Mag(1) != 7.0 || s.Rate(1) != 1e-4 {
		t.Errorf("unexpected bin 1: %g %g", s.Mag(1), s.Rate(1))
	}
	if !s.Floats() {
		t.Error("expected floats")
	}
}

func TestNewSequenceErrors(t *testing.T) {
	in := []struct {
		id    string
		mags  []float64
		rates []float64
	}{
		{id: "empty", mags: []float64{}, rates: []float64{}},
		{id: "length mismatch", mags: []float64{6.5, 7.0}, rates: []float64{1e-3}},
		{id: "descending", mags: []float64{7.0, 6.5}, rates: []float64{1e-3, 1e-4}},
		{id: "duplicate", mags: []float64{7.0, 7.0}, rates: []float64{1e-3, 1e-4}},
	}

	for _, v := range in {
		_, err := mfd.NewSequence(v.mags, v.rates, false)
		if err == nil {
			t.Errorf("%s: expected error", v.id)
			continue
		}
		var ce eq.ConfigError
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected ConfigError got %v", v.id, err)
		}
	}
}

func TestSequenceImmutable(t *testing.T) {
	mags := []float64{6.5, 7.0}
	rates := []float64{1e-3, 1e-4}

	s, err := mfd.NewSequence(mags, rates, false)
	if err != nil {
		t.Fatal(err)
	}

	// the sequence copies its inputs
	mags[0] = 0.0
	rates[0] = 0.0
	if s.Mag(0) != 6.5 || s.Rate(0) != 1e-3 {
		t.Error("sequence shares storage with its inputs")
	}

	// and its accessors return copies
	m := s.Mags()
	m[0] = 0.0
	if s.Mag(0) != 6.5 {
		t.Error("Mags returns shared storage")
	}
}

func TestSequenceScaled(t *testing.T) {
	s, err := mfd.NewSequence([]float64{6.5, 7.0}, []float64{1e-3, 1e-4}, true)
	if err != nil {
		t.Fatal(err)
	}

	d := s.Scaled(0.5)
	if d.Rate(0) != 5e-4 || d.Rate(1) != 5e-5 {
		t.Errorf("unexpected scaled rates %g %g", d.Rate(0), d.Rate(1))
	}
	if d.Mag(0) != 6.5 {
		t.Errorf("scaling changed magnitudes: %g", d.Mag(0))
	}
	if !d.Floats() {
		t.Error("scaling dropped the floats flag")
	}
	if s.Rate(0) != 1e-3 {
		t.Error("scaling mutated the receiver")
	}
}

package model

import (
	"errors"
	"math"
	"testing"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/eq/fault"
	"github.com/GeoNet/hazard/internal/eq/mfd"
	"github.com/GeoNet/hazard/internal/eq/surface"
	"github.com/GeoNet/hazard/internal/geo"
)

var testLoc = geo.Location{Lat: -41.3, Lon: 174.8}

// twoDepthModel has a single bucket with two depth bins.
func twoDepthModel(t *testing.T, mags []float64) *DepthModel {
	t.Helper()
	d, err := NewDepthModel(
		[]MagDepthBucket{{MagCutoff: 10.0, Depths: []DepthDist{{2.0, 0.6}, {5.0, 0.4}}}},
		mags, 14.0)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// oneDepthModel has a single bucket with one fully weighted depth bin.
func oneDepthModel(t *testing.T, mags []float64) *DepthModel {
	t.Helper()
	d, err := NewDepthModel(
		[]MagDepthBucket{{MagCutoff: 10.0, Depths: []DepthDist{{5.0, 1.0}}}},
		mags, 14.0)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func testMfd(t *testing.T, mags, rates []float64) *mfd.Sequence {
	t.Helper()
	m, err := mfd.NewSequence(mags, rates, false)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestPointSourceSize(t *testing.T) {
	mags := []float64{5.0, 5.5, 6.0}
	m := testMfd(t, mags, []float64{1e-3, 1e-4, 1e-5})
	d := twoDepthModel(t, mags) // N = 3 mags x 2 depths = 6

	// only strike-slip: size equals the mag-depth bin count
	p, err := NewPointSource(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 1.0},
		surface.PeerAreaUncorrected{}, d)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size() != 6 {
		t.Errorf("expected size 6 got %d", p.Size())
	}

	// all three mechanisms: SS + RV + NR, no doubling for a simple point
	p, err = NewPointSource(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 0.4, fault.Reverse: 0.3, fault.Normal: 0.3},
		surface.PeerAreaUncorrected{}, d)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size() != 18 {
		t.Errorf("expected size 18 got %d", p.Size())
	}
}

// a zero mechanism weight yields a zero-length index range; those ruptures
// are omitted entirely, not merely rated zero.
func TestPointSourceZeroWeightOmitted(t *testing.T) {
	mags := []float64{5.0}
	m := testMfd(t, mags, []float64{1e-3})
	d := twoDepthModel(t, mags)

	p, err := NewPointSource(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 1.0, fault.Reverse: 0.0, fault.Normal: 0.0},
		surface.PeerAreaUncorrected{}, d)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size() != 2 {
		t.Errorf("expected size 2 got %d", p.Size())
	}

	it, err := p.Ruptures()
	if err != nil {
		t.Fatal(err)
	}
	for it.Next() {
		if rake := it.Rupture().Rake; rake != 0.0 {
			t.Errorf("expected only strike-slip ruptures, got rake %f", rake)
		}
	}
}

func TestPointSourceFiniteSize(t *testing.T) {
	mags := []float64{5.0, 5.5, 6.0}
	m := testMfd(t, mags, []float64{1e-3, 1e-4, 1e-5})
	d := twoDepthModel(t, mags) // N = 6

	// finite variant doubles dipping mechanisms: N x (1 + 2 + 2)
	p, err := NewPointSourceFinite(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 1.0, fault.Reverse: 1.0, fault.Normal: 1.0},
		surface.PeerAreaUncorrected{}, d)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size() != 30 {
		t.Errorf("expected size 30 got %d", p.Size())
	}
}

// worked footwall partition: depth-bin count 2, all mechanism weights 1.
// ssCount=2, revCount=4 (footwall sub-block 2), norCount=4, so the
// boundaries are fwIndexLo=4, revIndexEnd=6, fwIndexHi=8.
func TestPointSourceFiniteFootwallPartition(t *testing.T) {
	mags := []float64{6.0}
	m := testMfd(t, mags, []float64{1e-3})
	d := twoDepthModel(t, mags)

	p, err := NewPointSourceFinite(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 1.0, fault.Reverse: 1.0, fault.Normal: 1.0},
		surface.PeerAreaUncorrected{}, d)
	if err != nil {
		t.Fatal(err)
	}

	if p.fwIdxLo != 4 || p.revIdx != 6 || p.fwIdxHi != 8 {
		t.Fatalf("expected boundaries 4/6/8 got %d/%d/%d", p.fwIdxLo, p.revIdx, p.fwIdxHi)
	}

	want := []struct {
		index    int
		footwall bool
	}{
		{0, true}, {1, true}, // SS
		{2, true}, {3, true}, // RV footwall
		{4, false}, {5, false}, // RV hanging
		{6, true}, {7, true}, // NR footwall
		{8, false}, {9, false}, // NR hanging
	}
	for _, w := range want {
		if got := p.isOnFootwall(w.index); got != w.footwall {
			t.Errorf("index %d: expected footwall %v got %v", w.index, w.footwall, got)
		}
	}
}

// a source with one magnitude bin, one fully weighted depth bin, and only
// strike-slip weight yields exactly one rupture at the raw MFD rate.
func TestPointSourceSingleRupture(t *testing.T) {
	mags := []float64{6.5}
	m := testMfd(t, mags, []float64{2.5e-4})
	d := oneDepthModel(t, mags)

	p, err := NewPointSource(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 1.0},
		surface.PeerAreaUncorrected{}, d)
	if err != nil {
		t.Fatal(err)
	}
	if p.Size() != 1 {
		t.Fatalf("expected size 1 got %d", p.Size())
	}

	it, err := p.Ruptures()
	if err != nil {
		t.Fatal(err)
	}
	if !it.Next() {
		t.Fatal("expected one rupture")
	}
	rup := it.Rupture()
	if rup.Mag != 6.5 {
		t.Errorf("expected magnitude 6.5 got %f", rup.Mag)
	}
	if rup.Rate != 2.5e-4 {
		t.Errorf("expected raw mfd rate 2.5e-4 got %g", rup.Rate)
	}
	if it.Next() {
		t.Error("expected exhausted session")
	}
}

// point enumeration reuses one rupture instance, overwriting it per step.
func TestPointSourceRuptureReuse(t *testing.T) {
	mags := []float64{5.0, 6.0}
	m := testMfd(t, mags, []float64{1e-3, 1e-4})
	d := oneDepthModel(t, mags)

	p, err := NewPointSource(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 1.0},
		surface.PeerAreaUncorrected{}, d)
	if err != nil {
		t.Fatal(err)
	}

	it, err := p.Ruptures()
	if err != nil {
		t.Fatal(err)
	}
	if !it.Next() {
		t.Fatal("expected first rupture")
	}
	first := it.Rupture()
	firstMag := first.Mag
	if !it.Next() {
		t.Fatal("expected second rupture")
	}
	if it.Rupture() != first {
		t.Error("expected the same rupture instance across steps")
	}
	if first.Mag == firstMag {
		t.Error("expected the rupture to be overwritten on the next step")
	}
}

// rate composes the MFD rate, depth weight, and mechanism weight; dipping
// mechanisms in the finite variant halve their weight per geometry.
func TestPointSourceFiniteRates(t *testing.T) {
	mags := []float64{6.0}
	m := testMfd(t, mags, []float64{1e-3})
	d := twoDepthModel(t, mags)

	p, err := NewPointSourceFinite(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 0.5, fault.Reverse: 0.5},
		surface.PeerAreaUncorrected{}, d)
	if err != nil {
		t.Fatal(err)
	}

	var total float64
	it, err := p.Ruptures()
	if err != nil {
		t.Fatal(err)
	}
	for it.Next() {
		total += it.Rupture().Rate
	}
	// all depth and mechanism weights combined conserve the bin rate
	if math.Abs(total-1e-3) > 1e-15 {
		t.Errorf("expected rates to sum to 1e-3 got %g", total)
	}
}

func TestPointSourceMissingInput(t *testing.T) {
	mags := []float64{6.0}
	m := testMfd(t, mags, []float64{1e-3})
	d := twoDepthModel(t, mags)

	_, err := NewPointSource(GridType, testLoc, nil,
		map[fault.Mech]float64{fault.StrikeSlip: 1.0},
		surface.PeerAreaUncorrected{}, d)
	var ce eq.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("expected ConfigError for nil mfd got %v", err)
	}

	_, err = NewPointSource(GridType, testLoc, m,
		map[fault.Mech]float64{fault.StrikeSlip: 1.0}, nil, d)
	if !errors.As(err, &ce) {
		t.Errorf("expected ConfigError for nil scaling got %v", err)
	}
}

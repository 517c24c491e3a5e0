package model

import (
	"errors"
	"math"
	"testing"

	"github.com/GeoNet/hazard/internal/eq"
)

// the worked example from the DepthModel doc comment.
var testBuckets = []MagDepthBucket{
	{MagCutoff: 6.5, Depths: []DepthDist{{1.0, 0.4}, {3.0, 0.5}, {5.0, 0.1}}},
	{MagCutoff: 10.0, Depths: []DepthDist{{1.0, 0.1}, {5.0, 0.9}}},
}

var testMagMaster = []float64{5.0, 5.5, 6.0, 6.5, 7.0}

func TestNewDepthModel(t *testing.T) {
	d, err := NewDepthModel(testBuckets, testMagMaster, 14.0)
	if err != nil {
		t.Fatal(err)
	}

	if d.Len() != 13 {
		t.Errorf("expected 13 flattened entries got %d", d.Len())
	}

	wantIndices := []int{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 4, 4}
	wantDepths := []float64{1, 3, 5, 1, 3, 5, 1, 3, 5, 1, 5, 1, 5}
	wantWeights := []float64{0.4, 0.5, 0.1, 0.4, 0.5, 0.1, 0.4, 0.5, 0.1, 0.1, 0.9, 0.1, 0.9}

	for i := 0; i < d.Len(); i++ {
		if d.MagIndex(i) != wantIndices[i] {
			t.Errorf("index %d: expected mag index %d got %d", i, wantIndices[i], d.MagIndex(i))
		}
		if d.Depth(i) != wantDepths[i] {
			t.Errorf("index %d: expected depth %f got %f", i, wantDepths[i], d.Depth(i))
		}
		if d.Weight(i) != wantWeights[i] {
			t.Errorf("index %d: expected weight %f got %f", i, wantWeights[i], d.Weight(i))
		}
	}

	// mag index array is non-decreasing
	for i := 1; i < d.Len(); i++ {
		if d.MagIndex(i) < d.MagIndex(i-1) {
			t.Errorf("mag indices decrease at %d", i)
		}
	}
}

// the weights attached to a magnitude's depth entries sum to the weight mass
// of its cutoff bucket.
func TestDepthModelWeightMass(t *testing.T) {
	d, err := NewDepthModel(testBuckets, testMagMaster, 14.0)
	if err != nil {
		t.Fatal(err)
	}

	bucketMass := func(m float64) float64 {
		for _, b := range testBuckets {
			if m < b.MagCutoff {
				var sum float64
				for _, dd := range b.Depths {
					sum += dd.Weight
				}
				return sum
			}
		}
		return math.NaN()
	}

	for mi, m := range testMagMaster {
		var sum float64
		for i := 0; i < d.Len(); i++ {
			if d.MagIndex(i) == mi {
				sum += d.Weight(i)
			}
		}
		if math.Abs(sum-bucketMass(m)) > 1e-12 {
			t.Errorf("magnitude %f: weight sum %f does not match bucket mass %f", m, sum, bucketMass(m))
		}
	}
}

func TestDepthModelIndexCount(t *testing.T) {
	d, err := NewDepthModel(testBuckets, testMagMaster, 14.0)
	if err != nil {
		t.Fatal(err)
	}

	// a source using only the first three magnitudes iterates 9 entries
	if n := d.IndexCount(3); n != 9 {
		t.Errorf("expected 9 got %d", n)
	}
	if n := d.IndexCount(5); n != 13 {
		t.Errorf("expected 13 got %d", n)
	}
}

func TestDepthModelMagAboveCutoffs(t *testing.T) {
	_, err := NewDepthModel(testBuckets, []float64{5.0, 11.0}, 14.0)
	if err == nil {
		t.Fatal("expected error for magnitude above all cutoffs")
	}

	var ce eq.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("expected ConfigError got %T", err)
	}
}

func TestDepthModelUnorderedBuckets(t *testing.T) {
	buckets := []MagDepthBucket{
		{MagCutoff: 10.0, Depths: []DepthDist{{1.0, 1.0}}},
		{MagCutoff: 6.5, Depths: []DepthDist{{5.0, 1.0}}},
	}
	if _, err := NewDepthModel(buckets, testMagMaster, 14.0); err == nil {
		t.Error("expected error for unordered buckets")
	}
}

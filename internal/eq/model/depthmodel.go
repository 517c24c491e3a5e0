package model

import (
	"sort"

	"github.com/GeoNet/hazard/internal/eq"
)

// A DepthDist is one (depth, weight) pair of a magnitude-dependent depth
// distribution.
type DepthDist struct {
	Depth, Weight float64
}

// A MagDepthBucket holds the depth distribution applicable to magnitudes
// below MagCutoff.  Cutoffs are exclusive upper bounds: a bucket applies to
// magnitudes m with m < MagCutoff.
type MagDepthBucket struct {
	MagCutoff float64
	Depths    []DepthDist
}

/*
A DepthModel flattens a magnitude-cutoff keyed depth distribution into
parallel lookup arrays so that point source iteration never traverses maps.

Given buckets

	[6.5: [1.0:0.4, 3.0:0.5, 5.0:0.1], 10.0: [1.0:0.1, 5.0:0.9]]

and master magnitudes [5.0, 5.5, 6.0, 6.5, 7.0], the arrays become

	indices: [0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 4, 4]
	depths:  [1.0, 3.0, 5.0, 1.0, 3.0, 5.0, 1.0, 3.0, 5.0, 1.0, 5.0, 1.0, 5.0]
	weights: [0.4, 0.5, 0.1, 0.4, 0.5, 0.1, 0.4, 0.5, 0.1, 0.1, 0.9, 0.1, 0.9]

A model may span more magnitudes than any one source requires; sources only
reference indices up to their own maximum magnitude, so one model serves a
whole source collection.  MaxDepth constrains the down-dip width of finite
point sources.
*/
type DepthModel struct {
	MaxDepth  float64
	MagMaster []float64

	indices []int
	depths  []float64
	weights []float64
}

// NewDepthModel builds the lookup arrays.  Buckets must be ordered by
// ascending cutoff; master magnitudes must be ascending and unique.  It is
// an error for any master magnitude to have no bucket above it.
func NewDepthModel(buckets []MagDepthBucket, magMaster []float64, maxDepth float64) (*DepthModel, error) {
	if len(buckets) == 0 {
		return nil, eq.ConfigErrorf("depth model has no magnitude-depth buckets")
	}
	if len(magMaster) == 0 {
		return nil, eq.ConfigErrorf("depth model has no master magnitudes")
	}
	if !sort.SliceIsSorted(buckets, func(i, j int) bool {
		return buckets[i].MagCutoff < buckets[j].MagCutoff
	}) {
		return nil, eq.ConfigErrorf("depth model buckets not ordered by magnitude cutoff")
	}

	d := &DepthModel{
		MaxDepth:  maxDepth,
		MagMaster: append([]float64(nil), magMaster...),
	}

	for i, m := range magMaster {
		if i > 0 && m <= magMaster[i-1] {
			return nil, eq.ConfigErrorf("master magnitudes not ascending at index %d", i)
		}
		bucket := -1
		for j := range buckets {
			if m < buckets[j].MagCutoff {
				bucket = j
				break
			}
		}
		if bucket < 0 {
			return nil, eq.ConfigErrorf("magnitude %g above all depth model cutoffs", m)
		}
		for _, dd := range buckets[bucket].Depths {
			d.indices = append(d.indices, i)
			d.depths = append(d.depths, dd.Depth)
			d.weights = append(d.weights, dd.Weight)
		}
	}

	return d, nil
}

// MagIndex returns the master magnitude index for flattened entry i.
func (d *DepthModel) MagIndex(i int) int {
	return d.indices[i]
}

// Depth returns the depth of flattened entry i.
func (d *DepthModel) Depth(i int) float64 {
	return d.depths[i]
}

// Weight returns the depth weight of flattened entry i.
func (d *DepthModel) Weight(i int) float64 {
	return d.weights[i]
}

// Len returns the total number of flattened magnitude-depth entries.
func (d *DepthModel) Len() int {
	return len(d.indices)
}

// IndexCount returns the number of flattened entries covering the first
// nMags master magnitudes, i.e. the mag-depth iteration count for a source
// whose MFD has nMags bins.
func (d *DepthModel) IndexCount(nMags int) int {
	last := -1
	for i, idx := range d.indices {
		if idx == nMags-1 {
			last = i
		}
	}
	return last + 1
}

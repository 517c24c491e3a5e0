package model

import (
	"github.com/GeoNet/hazard/internal/eq/surface"
)

// A Rupture is a single earthquake produced by source enumeration.
//
// Fault and interface sources materialize independent immutable Rupture
// instances at construction.  Point sources reuse one instance per
// enumeration session, overwriting it on each step; see Ruptures.
type Rupture struct {
	Mag     float64
	Rate    float64 // annual rate
	Rake    float64 // degrees
	Surface surface.Surface
}

// NewRupture creates an immutable rupture spanning the supplied surface.
func NewRupture(mag, rate, rake float64, surf surface.Surface) *Rupture {
	return &Rupture{Mag: mag, Rate: rate, Rake: rake, Surface: surf}
}

package surface

import (
	"math"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/geo"
)

/*
The point surface variants below are the per-rupture mutable geometry owned
by point source enumeration sessions.  The static location and scaling model
are fixed at session start; the remaining exported fields are overwritten by
the owning source on every enumeration step and are only valid until the
next step is taken.
*/

// Point is the simplest rupture surface: all distance metrics derive from
// the horizontal site-to-source distance, optionally corrected by the
// scaling model, and the depth to rupture.  It carries no finiteness and
// makes no footwall/hanging-wall distinction.
type Point struct {
	Loc     geo.Location
	Scaling Scaling

	// per-rupture state
	Mag    float64
	DipRad float64
	ZTop   float64
}

func (p *Point) DistanceTo(site geo.Location) Distance {
	rJB := geo.HorzDistance(p.Loc, site)
	rJB = p.Scaling.PointSourceDistance(p.Mag, rJB)
	rRup := math.Hypot(rJB, p.ZTop)
	return Distance{RJB: rJB, RRup: rRup, RX: rJB}
}

func (p *Point) Strike() (float64, error) {
	return 0, eq.UnsupportedError{Capability: "strike on point surface"}
}

func (p *Point) Dip() float64 {
	return p.DipRad * 180.0 / math.Pi
}

func (p *Point) DipDirection() (float64, error) {
	return 0, eq.UnsupportedError{Capability: "dip direction on point surface"}
}

func (p *Point) Length() (float64, error) {
	return 0, eq.UnsupportedError{Capability: "length on point surface"}
}

// Width returns a generic 10 km width.  Ground motion models capable of
// using point sources generally ignore it but require a value.
func (p *Point) Width() float64 {
	return 10.0
}

func (p *Point) Area() (float64, error) {
	return 0, eq.UnsupportedError{Capability: "area on point surface"}
}

func (p *Point) Depth() float64 {
	return p.ZTop
}

func (p *Point) Centroid() geo.Location {
	return p.Loc
}

// Finite is the dual footwall/hanging-wall pseudo-geometry used by finite
// point sources.  The Footwall flag selects which of the two mirror-image
// representations of a dipping rupture the current enumeration step models.
type Finite struct {
	Point

	// per-rupture state
	ZBot     float64 // base of rupture
	WidthH   float64 // horizontal width (surface projection)
	WidthDD  float64 // down-dip width
	Footwall bool
}

func (f *Finite) DistanceTo(site geo.Location) Distance {
	rJB := geo.HorzDistance(f.Loc, site)
	rJB = f.Scaling.PointSourceDistance(f.Mag, rJB)

	if f.Footwall {
		return Distance{RJB: rJB, RRup: math.Hypot(rJB, f.ZTop), RX: -rJB}
	}

	rX := rJB + f.WidthH
	rCut := f.ZBot * math.Tan(f.DipRad)

	if rJB > rCut {
		return Distance{RJB: rJB, RRup: math.Hypot(rJB, f.ZBot), RX: rX}
	}

	// rRup when rJB is 0 -- the minimum of site-to-top-edge and
	// site-to-normal of rupture for a site directly over the down-dip edge
	rRup0 := math.Min(math.Hypot(f.WidthH, f.ZTop), f.ZBot*math.Cos(f.DipRad))
	// rRup at the cutoff rJB
	rRupC := f.ZBot / math.Cos(f.DipRad)
	// scale linearly with rJB distance
	rRup := (rRupC-rRup0)*rJB/rCut + rRup0

	return Distance{RJB: rJB, RRup: rRup, RX: rX}
}

func (f *Finite) Width() float64 {
	return f.WidthDD
}

// FixedStrike is a true oriented rectangular surface, used when gridded
// seismicity is constrained to a known strike.  The four corner locations
// trace the rupture: top edge P1→P2, bottom edge P4←P3.
type FixedStrike struct {
	Finite

	// per-rupture state
	P1, P2, P3, P4 geo.Location
}

/*
The Footwall flag in Finite cannot be interpreted here the way Finite does.
Dipping fixed-strike ruptures have two real mirror-image representations
(defined by corner locations); which one is actually on the footwall side of
a site is unknown until distances are computed.
*/

func (f *FixedStrike) DistanceTo(site geo.Location) Distance {
	// no point-source distance corrections on a true rectangle

	rX := geo.DistanceToLine(f.P1, f.P2, site)
	rSeg := geo.DistanceToSegment(f.P1, f.P2, site)

	// simple footwall case
	isVertical := f.DipRad == math.Pi/2
	if rX <= 0.0 || isVertical {
		return Distance{RJB: rSeg, RRup: math.Hypot(rSeg, f.ZTop), RX: rX}
	}

	// otherwise the site is on the hanging wall...

	// compute rRup as though the site is between the trace endpoints
	rCutTop := math.Tan(f.DipRad) * f.ZTop
	rCutBot := math.Tan(f.DipRad)*f.ZBot + f.WidthH
	var rRup float64
	switch {
	case rX > rCutBot:
		rRup = math.Hypot(rX-f.WidthH, f.ZBot)
	case rX < rCutTop:
		rRup = math.Hypot(rX, f.ZTop)
	default:
		rRup = math.Hypot(rCutTop, f.ZTop) + (rX-rCutTop)*math.Sin(f.DipRad)
	}

	// test whether the site is normal to the trace or past its endpoints
	offEnd := rSeg-rX > 1e-5

	if offEnd {
		// distance from the surface projection of the rupture end caps
		rJB := math.Min(
			geo.DistanceToSegment(f.P1, f.P4, site),
			geo.DistanceToSegment(f.P2, f.P3, site))
		rY := math.Sqrt(rSeg*rSeg - rX*rX)
		// true rRup is the hypotenuse of the in-line rRup and rY
		return Distance{RJB: rJB, RRup: math.Hypot(rRup, rY), RX: rX}
	}

	rJB := 0.0
	if rX > f.WidthH {
		rJB = rX - f.WidthH
	}
	return Distance{RJB: rJB, RRup: rRup, RX: rX}
}

func (f *FixedStrike) Strike() (float64, error) {
	return geo.Azimuth(f.P1, f.P2) * 180.0 / math.Pi, nil
}

func (f *FixedStrike) Length() (float64, error) {
	return geo.HorzDistance(f.P1, f.P2), nil
}

func (f *FixedStrike) Width() float64 {
	return f.WidthDD
}

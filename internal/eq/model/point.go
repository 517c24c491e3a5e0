package model

import (
	"fmt"
	"math"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/eq/fault"
	"github.com/GeoNet/hazard/internal/eq/mfd"
	"github.com/GeoNet/hazard/internal/eq/surface"
	"github.com/GeoNet/hazard/internal/geo"
)

/*
pointData carries the state common to the three point source variants: the
source parameters and the rupture index partition.

The partition assigns contiguous index ranges to each focal mechanism in the
order SS, RV, NR (the finite variants further split RV and NR into footwall
and hanging-wall halves).  Within a range, index modulo the mag-depth count
selects a (magnitude, depth, weight) triple via the depth model.  Mechanisms
with zero weight occupy zero-length ranges and so are never enumerated.
*/
type pointData struct {
	typ     SourceType
	loc     geo.Location
	mfd     *mfd.Sequence
	mechWts map[fault.Mech]float64
	scaling surface.Scaling
	depths  *DepthModel

	rupCount     int
	magDepthSize int
	ssIdx        int
	revIdx       int
}

func newPointData(typ SourceType, loc geo.Location, m *mfd.Sequence,
	mechWts map[fault.Mech]float64, scaling surface.Scaling, depths *DepthModel) (pointData, error) {

	switch {
	case m == nil:
		return pointData{}, eq.ConfigErrorf("point source mfd not set")
	case scaling == nil:
		return pointData{}, eq.ConfigErrorf("point source rupture-scaling model not set")
	case depths == nil:
		return pointData{}, eq.ConfigErrorf("point source depth model not set")
	case mechWts == nil:
		return pointData{}, eq.ConfigErrorf("point source mechanism weights not set")
	}

	p := pointData{
		typ:     typ,
		loc:     loc,
		mfd:     m,
		mechWts: mechWts,
		scaling: scaling,
		depths:  depths,
	}
	p.magDepthSize = depths.IndexCount(m.Len())
	if p.magDepthSize == 0 {
		return pointData{}, eq.ConfigErrorf("point source mfd extends beyond depth model")
	}
	return p, nil
}

func (p *pointData) mechWt(m fault.Mech) float64 {
	return p.mechWts[m]
}

// mechForIndex returns the focal mechanism of the rupture at index.
// Iteration order is always SS -> RV -> NR.
func (p *pointData) mechForIndex(index int) fault.Mech {
	switch {
	case index < p.ssIdx:
		return fault.StrikeSlip
	case index < p.revIdx:
		return fault.Reverse
	}
	return fault.Normal
}

// magDepth resolves the (magnitude, rate, depth, depth weight) tuple for a
// rupture index.
func (p *pointData) magDepth(index int) (mag, rate, zTop, zTopWt float64) {
	magDepthIndex := index % p.magDepthSize
	magIndex := p.depths.MagIndex(magDepthIndex)
	return p.mfd.Mag(magIndex), p.mfd.Rate(magIndex),
		p.depths.Depth(magDepthIndex), p.depths.Weight(magDepthIndex)
}

func formatLocation(loc geo.Location) string {
	return fmt.Sprintf("%.3f, %.3f", loc.Lon, loc.Lat)
}

// A PointSource is the simplest point earthquake source.  Ruptures carry
// dips and rakes for the different focal mechanisms but all distance
// metrics derive from the site-to-point distance, which may be corrected by
// the rupture-scaling model.  Not for use with ground motion models that
// consider hanging-wall effects; use PointSourceFinite for those.
type PointSource struct {
	pointData
}

// NewPointSource validates the inputs and precomputes the index partition.
func NewPointSource(typ SourceType, loc geo.Location, m *mfd.Sequence,
	mechWts map[fault.Mech]float64, scaling surface.Scaling, depths *DepthModel) (*PointSource, error) {

	data, err := newPointData(typ, loc, m, mechWts, scaling, depths)
	if err != nil {
		return nil, err
	}
	p := &PointSource{pointData: data}

	// index partition: SS RV NR, each with every mag-depth combination
	ssCount := int(math.Ceil(p.mechWt(fault.StrikeSlip))) * p.magDepthSize
	revCount := int(math.Ceil(p.mechWt(fault.Reverse))) * p.magDepthSize
	norCount := int(math.Ceil(p.mechWt(fault.Normal))) * p.magDepthSize
	p.ssIdx = ssCount
	p.revIdx = ssCount + revCount
	p.rupCount = ssCount + revCount + norCount

	return p, nil
}

func (p *PointSource) Name() string {
	return "PointSource: " + formatLocation(p.loc)
}

func (p *PointSource) Size() int {
	return p.rupCount
}

// ID returns -1; point sources are addressed positionally by a parent grid.
func (p *PointSource) ID() int {
	return -1
}

func (p *PointSource) Type() SourceType {
	return p.typ
}

// Location returns the point source location, ignoring the site and any
// distance corrections applied to attendant ruptures.
func (p *PointSource) Location(site geo.Location) geo.Location {
	return p.loc
}

func (p *PointSource) Mfds() []*mfd.Sequence {
	return []*mfd.Sequence{p.mfd}
}

func (p *PointSource) Ruptures() (*Ruptures, error) {
	surf := &surface.Point{Loc: p.loc, Scaling: p.scaling}
	rup := &Rupture{Surface: surf}
	return &Ruptures{
		size: p.rupCount,
		rup:  rup,
		update: func(index int) {
			p.updateRupture(rup, surf, index)
		},
	}, nil
}

func (p *PointSource) updateRupture(rup *Rupture, surf *surface.Point, index int) {
	mag, rate, zTop, zTopWt := p.magDepth(index)

	mech := p.mechForIndex(index)
	mechWt := p.mechWt(mech)

	rup.Mag = mag
	rup.Rake = mech.Rake()
	rup.Rate = rate * zTopWt * mechWt

	surf.Mag = mag // needed for the point-source distance correction
	surf.DipRad = mech.Dip() * math.Pi / 180.0
	surf.ZTop = zTop
}

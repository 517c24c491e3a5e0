package model

import (
	"math"

	"github.com/GeoNet/hazard/internal/eq/fault"
	"github.com/GeoNet/hazard/internal/eq/mfd"
	"github.com/GeoNet/hazard/internal/eq/surface"
	"github.com/GeoNet/hazard/internal/geo"
)

// A PointSourceFinite represents every magnitude as a finite fault.  Dipping
// (normal and reverse) mechanisms are doubled into two pseudo-geometries,
// one dipping toward the site and one away, each carrying half the
// mechanism weight; strike-slip ruptures are never doubled and are always
// treated as footwall.  This is the generalized point source representation
// used for gridded seismicity with weighted magnitude-depth distributions
// and hanging-wall aware ground motion models.
type PointSourceFinite struct {
	pointData
	fwIdxLo int
	fwIdxHi int
}

// NewPointSourceFinite validates the inputs and precomputes the index
// partition, including the footwall/hanging-wall block boundaries.
func NewPointSourceFinite(typ SourceType, loc geo.Location, m *mfd.Sequence,
	mechWts map[fault.Mech]float64, scaling surface.Scaling, depths *DepthModel) (*PointSourceFinite, error) {

	data, err := newPointData(typ, loc, m, mechWts, scaling, depths)
	if err != nil {
		return nil, err
	}
	p := &PointSourceFinite{pointData: data}
	p.initPartition()
	return p, nil
}

// initPartition lays out the index ranges SS-FW RV-FW RV-HW NR-FW NR-HW,
// each with every mag-depth combination.
func (p *PointSourceFinite) initPartition() {
	ssCount := int(math.Ceil(p.mechWt(fault.StrikeSlip))) * p.magDepthSize
	revCount := int(math.Ceil(p.mechWt(fault.Reverse))) * p.magDepthSize * 2
	norCount := int(math.Ceil(p.mechWt(fault.Normal))) * p.magDepthSize * 2
	p.ssIdx = ssCount
	p.revIdx = ssCount + revCount
	p.fwIdxLo = ssCount + revCount/2
	p.fwIdxHi = ssCount + revCount + norCount/2
	p.rupCount = ssCount + revCount + norCount
}

// isOnFootwall reports whether the rupture at index has its rX set negative.
// Strike-slip indices count as footwall to potentially short circuit
// hanging-wall terms downstream.
func (p *PointSourceFinite) isOnFootwall(index int) bool {
	switch {
	case index < p.fwIdxLo:
		return true
	case index < p.revIdx:
		return false
	case index < p.fwIdxHi:
		return true
	}
	return false
}

func (p *PointSourceFinite) Name() string {
	return "PointSourceFinite: " + formatLocation(p.loc)
}

func (p *PointSourceFinite) Size() int {
	return p.rupCount
}

func (p *PointSourceFinite) ID() int {
	return -1
}

func (p *PointSourceFinite) Type() SourceType {
	return p.typ
}

func (p *PointSourceFinite) Location(site geo.Location) geo.Location {
	return p.loc
}

func (p *PointSourceFinite) Mfds() []*mfd.Sequence {
	return []*mfd.Sequence{p.mfd}
}

func (p *PointSourceFinite) Ruptures() (*Ruptures, error) {
	surf := &surface.Finite{Point: surface.Point{Loc: p.loc, Scaling: p.scaling}}
	rup := &Rupture{Surface: surf}
	return &Ruptures{
		size: p.rupCount,
		rup:  rup,
		update: func(index int) {
			p.updateRupture(rup, surf, index)
		},
	}, nil
}

func (p *PointSourceFinite) updateRupture(rup *Rupture, surf *surface.Finite, index int) {
	mag, rate, zTop, zTopWt := p.magDepth(index)

	mech := p.mechForIndex(index)
	mechWt := p.mechWt(mech)
	if mech != fault.StrikeSlip {
		mechWt *= 0.5
	}
	dipRad := mech.Dip() * math.Pi / 180.0

	maxWidthDD := (p.depths.MaxDepth - zTop) / math.Sin(dipRad)
	widthDD := p.scaling.Dimensions(mag, maxWidthDD).Width

	rup.Mag = mag
	rup.Rake = mech.Rake()
	rup.Rate = rate * zTopWt * mechWt

	surf.Mag = mag // needed for the point-source distance correction
	surf.DipRad = dipRad
	surf.WidthDD = widthDD
	surf.WidthH = widthDD * math.Cos(dipRad)
	surf.ZTop = zTop
	surf.ZBot = zTop + widthDD*math.Sin(dipRad)
	surf.Footwall = p.isOnFootwall(index)
}

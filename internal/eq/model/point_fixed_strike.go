package model

import (
	"math"

	"github.com/GeoNet/hazard/internal/eq/fault"
	"github.com/GeoNet/hazard/internal/eq/mfd"
	"github.com/GeoNet/hazard/internal/eq/surface"
	"github.com/GeoNet/hazard/internal/geo"
)

// A PointSourceFixedStrike is a finite point source whose ruptures are true
// oriented rectangles along a fixed strike, with the trace always centered
// on the point location.
type PointSourceFixedStrike struct {
	PointSourceFinite
	strike float64 // degrees
}

// NewPointSourceFixedStrike validates the inputs and precomputes the index
// partition.
func NewPointSourceFixedStrike(typ SourceType, loc geo.Location, m *mfd.Sequence,
	mechWts map[fault.Mech]float64, scaling surface.Scaling, depths *DepthModel,
	strike float64) (*PointSourceFixedStrike, error) {

	finite, err := NewPointSourceFinite(typ, loc, m, mechWts, scaling, depths)
	if err != nil {
		return nil, err
	}
	return &PointSourceFixedStrike{PointSourceFinite: *finite, strike: strike}, nil
}

func (p *PointSourceFixedStrike) Name() string {
	return "PointSourceFixedStrike: " + formatLocation(p.loc)
}

func (p *PointSourceFixedStrike) Ruptures() (*Ruptures, error) {
	surf := &surface.FixedStrike{
		Finite: surface.Finite{Point: surface.Point{Loc: p.loc, Scaling: p.scaling}},
	}
	rup := &Rupture{Surface: surf}
	return &Ruptures{
		size: p.rupCount,
		rup:  rup,
		update: func(index int) {
			p.updateRupture(rup, surf, index)
		},
	}, nil
}

func (p *PointSourceFixedStrike) updateRupture(rup *Rupture, surf *surface.FixedStrike, index int) {
	mag, rate, zTop, zTopWt := p.magDepth(index)

	mech := p.mechForIndex(index)
	mechWt := p.mechWt(mech)
	if mech != fault.StrikeSlip {
		mechWt *= 0.5
	}
	dipRad := mech.Dip() * math.Pi / 180.0
	strikeRad := p.strike * math.Pi / 180.0

	maxWidthDD := (p.depths.MaxDepth - zTop) / math.Sin(dipRad)
	dims := p.scaling.Dimensions(mag, maxWidthDD)
	widthDD := dims.Width
	widthH := widthDD * math.Cos(dipRad)
	zBot := zTop + widthDD*math.Sin(dipRad)

	rup.Mag = mag
	rup.Rake = mech.Rake()
	rup.Rate = rate * zTopWt * mechWt

	surf.Mag = mag
	surf.DipRad = dipRad
	surf.WidthDD = widthDD
	surf.WidthH = widthH
	surf.ZTop = zTop
	surf.ZBot = zBot
	surf.Footwall = p.isOnFootwall(index)

	// project the two up-dip corners from the source location along strike
	distToEndpoint := dims.Length / 2.0
	locWithDepth := geo.Location{Lat: p.loc.Lat, Lon: p.loc.Lon, Depth: zTop}
	reverseStrikeRad := strikeRad + math.Pi

	p1 := geo.LocationAt(locWithDepth, strikeRad, distToEndpoint, 0.0)
	p2 := geo.LocationAt(locWithDepth, reverseStrikeRad, distToEndpoint, 0.0)

	if surf.Footwall {
		surf.P1 = p1
		surf.P2 = p2
		if mech == fault.StrikeSlip {
			surf.P3 = geo.Location{Lat: p2.Lat, Lon: p2.Lon, Depth: zBot}
			surf.P4 = geo.Location{Lat: p1.Lat, Lon: p1.Lon, Depth: zBot}
		} else {
			dipDirRad := fault.DipDirectionRad(p1, p2)
			surf.P3 = geo.LocationAt(p2, dipDirRad, widthH, zBot-zTop)
			surf.P4 = geo.LocationAt(p1, dipDirRad, widthH, zBot-zTop)
		}
	} else {
		surf.P1 = p2
		surf.P2 = p1
		if mech == fault.StrikeSlip {
			// retained for parity with the footwall branch although
			// strike-slip indices always partition as footwall
			surf.P3 = geo.Location{Lat: p1.Lat, Lon: p1.Lon, Depth: zBot}
			surf.P4 = geo.Location{Lat: p2.Lat, Lon: p2.Lon, Depth: zBot}
		} else {
			dipDirRad := fault.DipDirectionRad(p2, p1)
			surf.P3 = geo.LocationAt(p1, dipDirRad, widthH, zBot-zTop)
			surf.P4 = geo.LocationAt(p2, dipDirRad, widthH, zBot-zTop)
		}
	}
}

package model

import (
	"math"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/eq/fault"
	"github.com/GeoNet/hazard/internal/eq/surface"
	"github.com/GeoNet/hazard/internal/geo"
)

// An InterfaceSource is a subduction interface.  Rupture generation is
// identical to FaultSource; in addition a lower trace, derived from the
// surface when not independently supplied, participates in nearest-point
// queries to account for the large down-dip extent of interface geometries.
type InterfaceSource struct {
	FaultSource
	lowerTrace []geo.Location
}

func (s *InterfaceSource) Type() SourceType {
	return InterfaceType
}

// Location returns the closest point on the upper or lower trace relative
// to the site.
func (s *InterfaceSource) Location(site geo.Location) geo.Location {
	locs := make([]geo.Location, 0, len(s.trace)+len(s.lowerTrace))
	locs = append(locs, s.trace...)
	locs = append(locs, s.lowerTrace...)
	return geo.ClosestPoint(site, locs)
}

// LowerTrace returns the lower edge of the interface.
func (s *InterfaceSource) LowerTrace() []geo.Location {
	return s.lowerTrace
}

// An InterfaceBuilder assembles an InterfaceSource.  Either an upper and a
// lower trace must be set, or the upper trace with depth, dip and width as
// for a fault; in the dual-trace case depth, dip and width are derived from
// the surface.
type InterfaceBuilder struct {
	FaultBuilder
	lowerTrace []geo.Location
}

// NewInterfaceBuilder returns a single-use builder for a subduction
// interface source.
func NewInterfaceBuilder() *InterfaceBuilder {
	b := &InterfaceBuilder{}
	b.checkDepth = eq.CheckInterfaceDepth
	b.checkWidth = eq.CheckInterfaceWidth
	return b
}

// LowerTrace sets the lower edge of the interface.  The upper trace must be
// set first.
func (b *InterfaceBuilder) LowerTrace(trace []geo.Location) *InterfaceBuilder {
	if b.lowerTrace != nil {
		b.failDup("lower trace")
		return b
	}
	if b.trace == nil {
		b.fail(eq.ConfigErrorf("interface builder: upper trace must be set before lower trace"))
		return b
	}
	if err := fault.CheckTrace(trace); err != nil {
		b.fail(err)
		return b
	}
	b.lowerTrace = trace
	return b
}

// Build validates the assembled state, creates the interface surface, and
// materializes the rupture list.  The builder cannot be reused afterwards.
func (b *InterfaceBuilder) Build() (*InterfaceSource, error) {
	var surf surface.Gridded
	var err error

	if b.lowerTrace != nil {
		// dual-trace route; depth, dip and width come from the surface
		if b.depth == nil {
			nan := math.NaN()
			b.depth = &nan
		}
		if b.dip == nil {
			ninety := 90.0
			b.dip = &ninety
		}
		if b.width == nil {
			nan := math.NaN()
			b.width = &nan
		}
		if err = b.validate(); err != nil {
			return nil, err
		}
		surf, err = surface.NewApproxGridded(b.trace, b.lowerTrace, *b.spacing)
	} else {
		if err = b.validate(); err != nil {
			return nil, err
		}
		surf, err = surface.NewGridded(b.trace, *b.dip, *b.depth, *b.width, *b.spacing)
	}
	if err != nil {
		return nil, err
	}

	s := &InterfaceSource{
		FaultSource: FaultSource{
			name:        *b.name,
			id:          *b.id,
			trace:       b.trace,
			dip:         surf.Dip(),
			width:       surf.Width(),
			rake:        *b.rake,
			mfds:        b.mfds,
			spacing:     *b.spacing,
			scaling:     b.scaling,
			floating:    b.floating,
			variability: *b.variability,
			surf:        surf,
		},
	}

	if b.lowerTrace != nil {
		s.lowerTrace = b.lowerTrace
	} else {
		s.lowerTrace = surf.BottomEdge()
	}

	if err := s.initRuptures(); err != nil {
		return nil, err
	}
	return s, nil
}

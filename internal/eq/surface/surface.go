// Package surface provides rupture surface implementations and their
// distance-to-site calculations, the rupture scaling contract, and rupture
// floating over gridded surfaces.
package surface

import (
	"github.com/GeoNet/hazard/internal/geo"
)

// A Distance carries the three standard source-to-site distance metrics in
// km.  RJB is the closest horizontal distance to the surface projection of a
// rupture, RRup the closest 3-D distance to the rupture plane, and RX the
// signed horizontal distance from the surface projection of the up-dip edge,
// positive toward the hanging wall.
type Distance struct {
	RJB, RRup, RX float64
}

// A Surface is the geometry of a rupture.  Not every variant defines every
// attribute; queries for undefined attributes return an
// eq.UnsupportedError naming the missing capability.
type Surface interface {
	// DistanceTo returns the distance metrics from the rupture to the site.
	DistanceTo(site geo.Location) Distance

	// Strike returns the strike in degrees.
	Strike() (float64, error)

	// Dip returns the dip in degrees.
	Dip() float64

	// DipDirection returns the dip direction in degrees.
	DipDirection() (float64, error)

	// Length returns the along-strike length in km.
	Length() (float64, error)

	// Width returns the down-dip width in km.
	Width() float64

	// Area returns the surface area in km².
	Area() (float64, error)

	// Depth returns the depth to the top of the rupture in km.
	Depth() float64

	// Centroid returns a representative central location.
	Centroid() geo.Location
}

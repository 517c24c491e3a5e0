// Package geo provides location types and the fast distance and projection
// calculations used when iterating earthquake rupture geometries.  The fast
// variants scale longitude by latitude and work in a local cartesian frame;
// they are good to well under 1% at the distances relevant to hazard (< a few
// hundred km) and are used in preference to ellipsoid math in all per-rupture
// hot paths.
package geo

import (
	"math"
)

// mean earth radius in km.
const earthRadius = 6371.0072

// A Location is a geographic position.  Lat and Lon are in decimal degrees,
// Depth is in km, positive down.
type Location struct {
	Lat, Lon, Depth float64
}

func (l Location) latRad() float64 {
	return l.Lat * math.Pi / 180.0
}

func (l Location) lonRad() float64 {
	return l.Lon * math.Pi / 180.0
}

// HorzDistance returns the horizontal distance in km between p1 and p2,
// ignoring depth.
func HorzDistance(p1, p2 Location) float64 {
	lat1 := p1.latRad()
	lat2 := p2.latRad()
	dLat := lat1 - lat2
	dLon := (p1.lonRad() - p2.lonRad()) * math.Cos(0.5*(lat1+lat2))
	return earthRadius * math.Sqrt(dLat*dLat+dLon*dLon)
}

// LinearDistance returns the straight line distance in km between p1 and p2,
// including the difference in depth.
func LinearDistance(p1, p2 Location) float64 {
	h := HorzDistance(p1, p2)
	v := p1.Depth - p2.Depth
	return math.Sqrt(h*h + v*v)
}

// DistanceToLine returns the signed shortest horizontal distance in km from
// loc to the infinite line defined by p1 and p2.  The distance is positive
// when loc sits to the right of the line looking from p1 to p2 and negative
// to the left.  Depths are ignored.
func DistanceToLine(p1, p2, loc Location) float64 {
	lat1 := p1.latRad()
	lat2 := p2.latRad()
	lat3 := loc.latRad()
	lon1 := p1.lonRad()

	// longitude scaling at a weighted average latitude
	lonScale := math.Cos(0.5*lat3 + 0.25*lat1 + 0.25*lat2)

	x2 := (p2.lonRad() - lon1) * lonScale
	y2 := lat2 - lat1
	x3 := (loc.lonRad() - lon1) * lonScale
	y3 := lat3 - lat1

	return (x3*y2 - x2*y3) / math.Hypot(x2, y2) * earthRadius
}

// DistanceToSegment returns the shortest horizontal distance in km from loc
// to the line segment p1-p2.  Unlike DistanceToLine the result is always
// positive and sites beyond either endpoint measure to that endpoint.  Depths
// are ignored.
func DistanceToSegment(p1, p2, loc Location) float64 {
	lat1 := p1.latRad()
	lat2 := p2.latRad()
	lat3 := loc.latRad()
	lon1 := p1.lonRad()

	lonScale := math.Cos(0.5*lat3 + 0.25*lat1 + 0.25*lat2)

	x2 := (p2.lonRad() - lon1) * lonScale
	y2 := lat2 - lat1
	x3 := (loc.lonRad() - lon1) * lonScale
	y3 := lat3 - lat1

	// projection of loc onto the segment, clamped to the endpoints
	t := (x3*x2 + y3*y2) / (x2*x2 + y2*y2)
	switch {
	case t <= 0.0:
		return math.Hypot(x3, y3) * earthRadius
	case t >= 1.0:
		return math.Hypot(x3-x2, y3-y2) * earthRadius
	default:
		return math.Abs(x3*y2-x2*y3) / math.Hypot(x2, y2) * earthRadius
	}
}

// Azimuth returns the azimuth in radians [0, 2π) from p1 to p2.
func Azimuth(p1, p2 Location) float64 {
	lat1 := p1.latRad()
	lat2 := p2.latRad()
	dLon := p2.lonRad() - p1.lonRad()

	az := math.Atan2(
		math.Sin(dLon)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon))
	if az < 0 {
		az += 2 * math.Pi
	}
	return az
}

// LocationAt returns the location reached by travelling horizontally from p
// on the azimuth az (radians) for horiz km, and then vertically for vert km
// (positive down).
func LocationAt(p Location, az, horiz, vert float64) Location {
	lat1 := p.latRad()
	lon1 := p.lonRad()
	ad := horiz / earthRadius

	sinLat1 := math.Sin(lat1)
	cosLat1 := math.Cos(lat1)
	sinAd := math.Sin(ad)
	cosAd := math.Cos(ad)

	lat2 := math.Asin(sinLat1*cosAd + cosLat1*sinAd*math.Cos(az))
	lon2 := lon1 + math.Atan2(math.Sin(az)*sinAd*cosLat1, cosAd-sinLat1*math.Sin(lat2))

	return Location{
		Lat:   lat2 * 180.0 / math.Pi,
		Lon:   lon2 * 180.0 / math.Pi,
		Depth: p.Depth + vert,
	}
}

// ClosestPoint returns the location in locs closest (horizontally) to the
// site.  It is used for coarse source-to-site proximity queries, not
// per-rupture distance metrics.  locs must not be empty.
func ClosestPoint(site Location, locs []Location) Location {
	closest := locs[0]
	min := math.Inf(1)
	for _, l := range locs {
		if d := HorzDistance(site, l); d < min {
			min = d
			closest = l
		}
	}
	return closest
}

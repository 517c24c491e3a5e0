package geo

import (
	"github.com/GeoNet/kit/wgs84"
)

// DistanceBearing returns the WGS84 ellipsoid distance in km and bearing in
// degrees from p1 to p2.  This is exact but much slower than HorzDistance and
// is only used for reporting source-to-site proximity, never in per-rupture
// distance loops.
func DistanceBearing(p1, p2 Location) (distance, bearing float64, err error) {
	return wgs84.DistanceBearing(p1.Lat, p1.Lon, p2.Lat, p2.Lon)
}

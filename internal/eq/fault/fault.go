// Package fault provides focal mechanisms and fault geometry validation.
package fault

import (
	"math"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/geo"
)

// A Mech is a categorical fault slip style.  Each mechanism carries the
// generic dip and rake used when modelling point sources as finite faults.
type Mech int

const (
	StrikeSlip Mech = iota
	Normal
	Reverse
)

// Mechs lists all focal mechanisms in their canonical iteration order.
var Mechs = []Mech{StrikeSlip, Normal, Reverse}

func (m Mech) String() string {
	switch m {
	case StrikeSlip:
		return "strike-slip"
	case Normal:
		return "normal"
	case Reverse:
		return "reverse"
	}
	return "unknown"
}

// Dip returns the generic dip in degrees for the mechanism.
func (m Mech) Dip() float64 {
	if m == StrikeSlip {
		return 90.0
	}
	return 50.0
}

// Rake returns the generic rake in degrees for the mechanism.
func (m Mech) Rake() float64 {
	switch m {
	case Normal:
		return -90.0
	case Reverse:
		return 90.0
	}
	return 0.0
}

// CheckDip validates a dip in degrees.
func CheckDip(dip float64) error {
	if dip <= 0.0 || dip > 90.0 {
		return eq.ConfigErrorf("dip %g out of range (0, 90]", dip)
	}
	return nil
}

// CheckRake validates a rake in degrees.
func CheckRake(rake float64) error {
	if rake < -180.0 || rake > 180.0 {
		return eq.ConfigErrorf("rake %g out of range [-180, 180]", rake)
	}
	return nil
}

// CheckTrace validates a fault trace.  Self-intersection is the
// responsibility of upstream parsers; here only the point count is checked.
func CheckTrace(trace []geo.Location) error {
	if len(trace) < 2 {
		return eq.ConfigErrorf("trace has %d points, need at least 2", len(trace))
	}
	return nil
}

// DipDirectionRad returns the dip direction in radians for a fault whose
// trace runs from p1 to p2, 90° clockwise of strike.
func DipDirectionRad(p1, p2 geo.Location) float64 {
	az := geo.Azimuth(p1, p2) + math.Pi/2.0
	if az >= 2*math.Pi {
		az -= 2 * math.Pi
	}
	return az
}

package surface

import (
	"math"
)

// Dimensions are the length and down-dip width in km of a rupture derived
// from a scaling relation.
type Dimensions struct {
	Length, Width float64
}

// A Scaling relates magnitude to rupture dimensions and supplies the
// optional magnitude-dependent point-source distance correction.
type Scaling interface {
	// Dimensions returns the rupture length and width for a magnitude,
	// with width limited to maxWidth.
	Dimensions(mag, maxWidth float64) Dimensions

	// PointSourceDistance corrects an rJB computed from a site to a point
	// source for the finite extent of the implied rupture.  Implementations
	// that impose no correction return rJB unchanged.
	PointSourceDistance(mag, rJB float64) float64
}

// PeerArea is the mag-area scaling relation defined for the PEER PSHA test
// cases: median area 10^(M-4) km² with σ(log area) = 0.25.  Rake is ignored.
type PeerArea struct{}

// AreaSigma is the standard deviation of log10 area for PeerArea.
const AreaSigma = 0.25

// MedianArea returns the median rupture area in km² for a magnitude.
func (PeerArea) MedianArea(mag float64) float64 {
	return math.Pow(10, mag-4.0)
}

// Dimensions assumes square ruptures up to maxWidth and extends length
// beyond that.
func (p PeerArea) Dimensions(mag, maxWidth float64) Dimensions {
	area := p.MedianArea(mag)
	width := math.Min(math.Sqrt(area), maxWidth)
	return Dimensions{Length: area / width, Width: width}
}

// PointSourceDistance subtracts half the median rupture length, floored at
// zero, approximating the mean footprint of ruptures centered on the point.
func (p PeerArea) PointSourceDistance(mag, rJB float64) float64 {
	d := p.Dimensions(mag, math.MaxFloat64)
	return math.Max(rJB-0.5*d.Length, 0.0)
}

// PeerAreaUncorrected is PeerArea without the point-source distance
// correction.
type PeerAreaUncorrected struct {
	PeerArea
}

func (PeerAreaUncorrected) PointSourceDistance(mag, rJB float64) float64 {
	return rJB
}

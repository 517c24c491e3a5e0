package surface

import (
	"math"
)

// A Floater is one position of a floating rupture: a window onto the parent
// surface and the share of the parent bin's annual rate assigned to it.
type Floater struct {
	Surface Gridded
	Rate    float64
}

// A Floating model tiles a parent surface with rupture-sized windows.  The
// rates of the returned floaters always sum to the input rate.
type Floating interface {
	Float(parent Gridded, scaling Scaling, mag, rate, rake float64, variability bool) []Floater
}

// DefaultFloating floats ruptures uniformly over the parent surface.  When
// the variability flag is set, window sets for ±1σ of the scaling model's
// area uncertainty are floated as well, with the rate mass split between the
// three sets.
type DefaultFloating struct{}

// area variability weights for σ-, median, σ+ window sets.
var areaVariants = []struct {
	logOffset float64
	weight    float64
}{
	{-AreaSigma, 0.25},
	{0.0, 0.5},
	{AreaSigma, 0.25},
}

func (DefaultFloating) Float(parent Gridded, scaling Scaling, mag, rate, rake float64, variability bool) []Floater {
	if !variability {
		d := scaling.Dimensions(mag, parent.Width())
		return floatWindows(parent, d, rate)
	}

	var floaters []Floater
	for _, v := range areaVariants {
		scale := math.Pow(10, 0.5*v.logOffset) // √ of area factor on each dimension
		d := scaling.Dimensions(mag, parent.Width())
		d = Dimensions{Length: d.Length * scale, Width: math.Min(d.Width*scale, parent.Width())}
		floaters = append(floaters, floatWindows(parent, d, rate*v.weight)...)
	}
	return floaters
}

// floatWindows tiles the parent with windows of the supplied dimensions,
// splitting rate uniformly.  Windows larger than the parent clamp to its
// full extent.
func floatWindows(parent Gridded, d Dimensions, rate float64) []Floater {
	cols := int(math.RoundToEven(d.Length/parent.StrikeSpacing())) + 1
	alongCount := parent.Cols() - cols + 1
	if alongCount <= 1 {
		alongCount = 1
		cols = parent.Cols()
	}

	rows := int(math.RoundToEven(d.Width/parent.DipSpacing())) + 1
	downCount := parent.Rows() - rows + 1
	if downCount <= 1 {
		downCount = 1
		rows = parent.Rows()
	}

	n := alongCount * downCount
	each := rate / float64(n)

	floaters := make([]Floater, 0, n)
	for col := 0; col < alongCount; col++ {
		for row := 0; row < downCount; row++ {
			floaters = append(floaters, Floater{
				Surface: NewSubset(parent, row, col, rows, cols),
				Rate:    each,
			})
		}
	}
	return floaters
}

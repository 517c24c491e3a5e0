package surface

import (
	"math"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/geo"
)

// A Gridded surface is a rupture surface discretized as an evenly spaced
// grid of locations, rows running down dip and columns along strike.
type Gridded interface {
	Surface

	Rows() int
	Cols() int
	LocationAt(row, col int) geo.Location
	TopEdge() []geo.Location
	BottomEdge() []geo.Location
	StrikeSpacing() float64
	DipSpacing() float64
}

// DefaultGridded is a gridded surface projected from a surface trace down
// dip, or interpolated between an upper and lower trace for subduction
// interface geometries.
type DefaultGridded struct {
	grid          [][]geo.Location
	dip           float64 // degrees
	strikeSpacing float64 // km along strike
	dipSpacing    float64 // km down dip
}

// NewGridded builds a gridded surface by resampling trace at approximately
// spacing km along strike, translating it to depth km, and projecting rows
// down dip to the supplied width.
func NewGridded(trace []geo.Location, dip, depth, width, spacing float64) (*DefaultGridded, error) {
	if len(trace) < 2 {
		return nil, eq.ConfigErrorf("gridded surface trace has %d points", len(trace))
	}
	if spacing <= 0 {
		return nil, eq.ConfigErrorf("gridded surface spacing %g is not positive", spacing)
	}

	top, strikeSpacing := resampleTrace(trace, spacing)
	for i := range top {
		top[i].Depth = depth
	}

	nRows := int(math.RoundToEven(width/spacing)) + 1
	if nRows < 2 {
		nRows = 2
	}
	dipSpacing := width / float64(nRows-1)

	dipRad := dip * math.Pi / 180.0
	dipDir := geo.Azimuth(trace[0], trace[len(trace)-1]) + math.Pi/2.0

	grid := make([][]geo.Location, nRows)
	grid[0] = top
	for r := 1; r < nRows; r++ {
		dd := float64(r) * dipSpacing
		horiz := dd * math.Cos(dipRad)
		vert := dd * math.Sin(dipRad)
		row := make([]geo.Location, len(top))
		for c, p := range top {
			row[c] = geo.LocationAt(p, dipDir, horiz, vert)
		}
		grid[r] = row
	}

	return &DefaultGridded{
		grid:          grid,
		dip:           dip,
		strikeSpacing: strikeSpacing,
		dipSpacing:    dipSpacing,
	}, nil
}

// NewApproxGridded builds a gridded surface by interpolating between upper
// and lower traces, as used for subduction interfaces defined by two traces.
// Dip is averaged over the interpolated columns.
func NewApproxGridded(upper, lower []geo.Location, spacing float64) (*DefaultGridded, error) {
	if len(upper) < 2 || len(lower) < 2 {
		return nil, eq.ConfigErrorf("approx gridded surface requires two traces of at least 2 points")
	}
	if spacing <= 0 {
		return nil, eq.ConfigErrorf("gridded surface spacing %g is not positive", spacing)
	}

	top, strikeSpacing := resampleTrace(upper, spacing)
	bot, _ := resampleTraceN(lower, len(top))

	// average trace separation fixes the row count
	var sum float64
	for i := range top {
		sum += geo.LinearDistance(top[i], bot[i])
	}
	sep := sum / float64(len(top))

	nRows := int(math.RoundToEven(sep/spacing)) + 1
	if nRows < 2 {
		nRows = 2
	}
	dipSpacing := sep / float64(nRows-1)

	grid := make([][]geo.Location, nRows)
	for r := 0; r < nRows; r++ {
		f := float64(r) / float64(nRows-1)
		row := make([]geo.Location, len(top))
		for c := range top {
			row[c] = geo.Location{
				Lat:   top[c].Lat + f*(bot[c].Lat-top[c].Lat),
				Lon:   top[c].Lon + f*(bot[c].Lon-top[c].Lon),
				Depth: top[c].Depth + f*(bot[c].Depth-top[c].Depth),
			}
		}
		grid[r] = row
	}

	var dipSum float64
	for i := range top {
		h := geo.HorzDistance(top[i], bot[i])
		v := bot[i].Depth - top[i].Depth
		dipSum += math.Atan2(v, h)
	}
	dip := dipSum / float64(len(top)) * 180.0 / math.Pi

	return &DefaultGridded{
		grid:          grid,
		dip:           dip,
		strikeSpacing: strikeSpacing,
		dipSpacing:    dipSpacing,
	}, nil
}

// resampleTrace returns trace resampled at approximately spacing km and the
// actual spacing used.
func resampleTrace(trace []geo.Location, spacing float64) ([]geo.Location, float64) {
	var total float64
	for i := 1; i < len(trace); i++ {
		total += geo.HorzDistance(trace[i-1], trace[i])
	}

	n := int(math.RoundToEven(total/spacing)) + 1
	if n < 2 {
		n = 2
	}
	points, _ := resampleTraceN(trace, n)
	return points, total / float64(n-1)
}

// resampleTraceN returns trace resampled to exactly n evenly spaced points
// and the spacing used.
func resampleTraceN(trace []geo.Location, n int) ([]geo.Location, float64) {
	var total float64
	segs := make([]float64, len(trace)-1)
	for i := 1; i < len(trace); i++ {
		segs[i-1] = geo.HorzDistance(trace[i-1], trace[i])
		total += segs[i-1]
	}
	actual := total / float64(n-1)

	points := make([]geo.Location, n)
	points[0] = trace[0]
	seg := 0
	var cum float64
	for i := 1; i < n-1; i++ {
		d := float64(i) * actual
		for seg < len(segs)-1 && d > cum+segs[seg] {
			cum += segs[seg]
			seg++
		}
		az := geo.Azimuth(trace[seg], trace[seg+1])
		frac := 0.0
		if segs[seg] > 0 {
			frac = (trace[seg+1].Depth - trace[seg].Depth) * (d - cum) / segs[seg]
		}
		points[i] = geo.LocationAt(trace[seg], az, d-cum, frac)
	}
	points[n-1] = trace[len(trace)-1]
	return points, actual
}

func (g *DefaultGridded) Rows() int {
	return len(g.grid)
}

func (g *DefaultGridded) Cols() int {
	return len(g.grid[0])
}

func (g *DefaultGridded) LocationAt(row, col int) geo.Location {
	return g.grid[row][col]
}

func (g *DefaultGridded) TopEdge() []geo.Location {
	return g.grid[0]
}

func (g *DefaultGridded) BottomEdge() []geo.Location {
	return g.grid[len(g.grid)-1]
}

func (g *DefaultGridded) StrikeSpacing() float64 {
	return g.strikeSpacing
}

func (g *DefaultGridded) DipSpacing() float64 {
	return g.dipSpacing
}

func (g *DefaultGridded) DistanceTo(site geo.Location) Distance {
	return griddedDistanceTo(g, site)
}

func (g *DefaultGridded) Strike() (float64, error) {
	top := g.grid[0]
	return geo.Azimuth(top[0], top[len(top)-1]) * 180.0 / math.Pi, nil
}

func (g *DefaultGridded) Dip() float64 {
	return g.dip
}

func (g *DefaultGridded) DipDirection() (float64, error) {
	top := g.grid[0]
	dd := geo.Azimuth(top[0], top[len(top)-1])*180.0/math.Pi + 90.0
	if dd >= 360.0 {
		dd -= 360.0
	}
	return dd, nil
}

func (g *DefaultGridded) Length() (float64, error) {
	return float64(g.Cols()-1) * g.strikeSpacing, nil
}

func (g *DefaultGridded) Width() float64 {
	return float64(g.Rows()-1) * g.dipSpacing
}

func (g *DefaultGridded) Area() (float64, error) {
	l, _ := g.Length()
	return l * g.Width(), nil
}

func (g *DefaultGridded) Depth() float64 {
	return g.grid[0][0].Depth
}

func (g *DefaultGridded) Centroid() geo.Location {
	return g.grid[len(g.grid)/2][len(g.grid[0])/2]
}

// griddedDistanceTo scans a gridded surface for the minimum horizontal and
// 3-D distances to the site.  rX is measured from the line through the ends
// of the top edge.
func griddedDistanceTo(g Gridded, site geo.Location) Distance {
	rJB := math.Inf(1)
	rRup := math.Inf(1)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			loc := g.LocationAt(r, c)
			if h := geo.HorzDistance(site, loc); h < rJB {
				rJB = h
			}
			if d := geo.LinearDistance(site, loc); d < rRup {
				rRup = d
			}
		}
	}
	top := g.TopEdge()
	rX := geo.DistanceToLine(top[0], top[len(top)-1], site)
	return Distance{RJB: rJB, RRup: rRup, RX: rX}
}

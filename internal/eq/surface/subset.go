package surface

import (
	"math"

	"github.com/GeoNet/hazard/internal/geo"
)

// A Subset is a window onto a parent gridded surface.  It shares the
// parent's grid and spacing and is how floating ruptures reference their
// position without copying geometry.
type Subset struct {
	parent     Gridded
	row0, col0 int
	rows, cols int
}

// NewSubset returns the rows×cols window of parent with its upper-left node
// at (row0, col0).
func NewSubset(parent Gridded, row0, col0, rows, cols int) *Subset {
	return &Subset{parent: parent, row0: row0, col0: col0, rows: rows, cols: cols}
}

func (s *Subset) Rows() int {
	return s.rows
}

func (s *Subset) Cols() int {
	return s.cols
}

func (s *Subset) LocationAt(row, col int) geo.Location {
	return s.parent.LocationAt(s.row0+row, s.col0+col)
}

func (s *Subset) TopEdge() []geo.Location {
	edge := make([]geo.Location, s.cols)
	for c := 0; c < s.cols; c++ {
		edge[c] = s.LocationAt(0, c)
	}
	return edge
}

func (s *Subset) BottomEdge() []geo.Location {
	edge := make([]geo.Location, s.cols)
	for c := 0; c < s.cols; c++ {
		edge[c] = s.LocationAt(s.rows-1, c)
	}
	return edge
}

func (s *Subset) StrikeSpacing() float64 {
	return s.parent.StrikeSpacing()
}

func (s *Subset) DipSpacing() float64 {
	return s.parent.DipSpacing()
}

func (s *Subset) DistanceTo(site geo.Location) Distance {
	return griddedDistanceTo(s, site)
}

func (s *Subset) Strike() (float64, error) {
	return geo.Azimuth(s.LocationAt(0, 0), s.LocationAt(0, s.cols-1)) * 180.0 / math.Pi, nil
}

func (s *Subset) Dip() float64 {
	return s.parent.Dip()
}

func (s *Subset) DipDirection() (float64, error) {
	return s.parent.DipDirection()
}

func (s *Subset) Length() (float64, error) {
	return float64(s.cols-1) * s.StrikeSpacing(), nil
}

func (s *Subset) Width() float64 {
	return float64(s.rows-1) * s.DipSpacing()
}

func (s *Subset) Area() (float64, error) {
	l, _ := s.Length()
	return l * s.Width(), nil
}

func (s *Subset) Depth() float64 {
	return s.LocationAt(0, 0).Depth
}

func (s *Subset) Centroid() geo.Location {
	return s.LocationAt(s.rows/2, s.cols/2)
}

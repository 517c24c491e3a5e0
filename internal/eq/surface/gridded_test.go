package surface

import (
	"math"
	"testing"

	"github.com/GeoNet/hazard/internal/geo"
)

var testTrace = []geo.Location{
	{Lat: 34.0, Lon: -118.0},
	{Lat: 34.4, Lon: -118.0},
}

func TestNewGridded(t *testing.T) {
	g, err := NewGridded(testTrace, 90.0, 0.0, 15.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	// 0.4 degrees of latitude is ~44.5 km: 45 columns at ~1 km spacing
	length := geo.HorzDistance(testTrace[0], testTrace[1])
	wantCols := int(math.RoundToEven(length/1.0)) + 1
	if g.Cols() != wantCols {
		t.Errorf("expected %d cols got %d", wantCols, g.Cols())
	}
	if g.Rows() != 16 {
		t.Errorf("expected 16 rows got %d", g.Rows())
	}

	if d := g.Depth(); d != 0.0 {
		t.Errorf("expected top depth 0 got %f", d)
	}
	// vertical surface: bottom row at the full width
	bot := g.BottomEdge()
	if math.Abs(bot[0].Depth-15.0) > 1e-9 {
		t.Errorf("expected bottom depth 15 got %f", bot[0].Depth)
	}
	if w := g.Width(); math.Abs(w-15.0) > 1e-9 {
		t.Errorf("expected width 15 got %f", w)
	}

	strike, err := g.Strike()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(strike) > 0.1 {
		t.Errorf("expected strike ~0 for a north trending trace got %f", strike)
	}
}

func TestGriddedDipProjection(t *testing.T) {
	g, err := NewGridded(testTrace, 50.0, 1.0, 10.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	// bottom depth is top + width*sin(dip)
	want := 1.0 + 10.0*math.Sin(50.0*math.Pi/180.0)
	bot := g.BottomEdge()
	if math.Abs(bot[0].Depth-want) > 1e-6 {
		t.Errorf("expected bottom depth %f got %f", want, bot[0].Depth)
	}

	// bottom row is displaced horizontally toward the dip direction (east)
	top := g.TopEdge()
	if bot[0].Lon <= top[0].Lon {
		t.Errorf("expected eastward displacement, top lon %f bottom lon %f", top[0].Lon, bot[0].Lon)
	}
}

func TestGriddedDistance(t *testing.T) {
	g, err := NewGridded(testTrace, 90.0, 0.0, 15.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	site := geo.Location{Lat: 34.2, Lon: -117.8} // ~18 km east of the trace
	d := g.DistanceTo(site)

	if d.RJB <= 0 || d.RJB > 20 {
		t.Errorf("unexpected rJB %f", d.RJB)
	}
	if d.RRup < d.RJB {
		t.Errorf("rRup %f less than rJB %f", d.RRup, d.RJB)
	}
	if d.RX <= 0 {
		t.Errorf("expected positive rX east of the trace got %f", d.RX)
	}

	// a site on the surface projection of the top edge
	onTrace := geo.Location{Lat: 34.2, Lon: -118.0}
	d = g.DistanceTo(onTrace)
	if d.RJB > 0.6 {
		t.Errorf("expected near-zero rJB on the trace got %f", d.RJB)
	}
}

func TestNewApproxGridded(t *testing.T) {
	upper := []geo.Location{
		{Lat: 34.0, Lon: -118.0, Depth: 5.0},
		{Lat: 34.4, Lon: -118.0, Depth: 5.0},
	}
	lower := []geo.Location{
		{Lat: 34.0, Lon: -117.7, Depth: 30.0},
		{Lat: 34.4, Lon: -117.7, Depth: 30.0},
	}

	g, err := NewApproxGridded(upper, lower, 5.0)
	if err != nil {
		t.Fatal(err)
	}

	if g.Depth() != 5.0 {
		t.Errorf("expected top depth 5 got %f", g.Depth())
	}
	bot := g.BottomEdge()
	if math.Abs(bot[0].Depth-30.0) > 1e-9 {
		t.Errorf("expected bottom depth 30 got %f", bot[0].Depth)
	}

	// dip follows the depth gain over the horizontal separation
	h := geo.HorzDistance(upper[0], lower[0])
	wantDip := math.Atan2(25.0, h) * 180.0 / math.Pi
	if math.Abs(g.Dip()-wantDip) > 1.0 {
		t.Errorf("expected dip ~%f got %f", wantDip, g.Dip())
	}
}

func TestSubsetWindow(t *testing.T) {
	g, err := NewGridded(testTrace, 90.0, 0.0, 15.0, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	s := NewSubset(g, 2, 3, 5, 10)
	if s.Rows() != 5 || s.Cols() != 10 {
		t.Fatalf("unexpected window %dx%d", s.Rows(), s.Cols())
	}
	if s.LocationAt(0, 0) != g.LocationAt(2, 3) {
		t.Error("window origin does not match parent offset")
	}
	if w := s.Width(); math.Abs(w-4.0*g.DipSpacing()) > 1e-9 {
		t.Errorf("expected width %f got %f", 4.0*g.DipSpacing(), w)
	}
	if s.Depth() != g.LocationAt(2, 3).Depth {
		t.Errorf("unexpected subset depth %f", s.Depth())
	}
}

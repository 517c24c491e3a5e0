package fault

import (
	"math"
	"testing"

	"github.com/GeoNet/hazard/internal/geo"
)

func TestMechDipRake(t *testing.T) {
	in := []struct {
		m    Mech
		dip  float64
		rake float64
	}{
		{m: StrikeSlip, dip: 90.0, rake: 0.0},
		{m: Reverse, dip: 50.0, rake: 90.0},
		{m: Normal, dip: 50.0, rake: -90.0},
	}

	for _, v := range in {
		if d := v.m.Dip(); d != v.dip {
			t.Errorf("%s dip expected %g got %g", v.m, v.dip, d)
		}
		if r := v.m.Rake(); r != v.rake {
			t.Errorf("%s rake expected %g got %g", v.m, v.rake, r)
		}
	}
}

func TestChecks(t *testing.T) {
	if err := CheckDip(0.0); err == nil {
		t.Error("expected error for dip 0")
	}
	if err := CheckDip(90.1); err == nil {
		t.Error("expected error for dip above 90")
	}
	if err := CheckDip(90.0); err != nil {
		t.Errorf("unexpected error for dip 90: %v", err)
	}

	if err := CheckRake(-180.1); err == nil {
		t.Error("expected error for rake below -180")
	}
	if err := CheckRake(180.0); err != nil {
		t.Errorf("unexpected error for rake 180: %v", err)
	}

	if err := CheckTrace([]geo.Location{{Lat: -41.3, Lon: 174.0}}); err == nil {
		t.Error("expected error for single point trace")
	}
	if err := CheckTrace([]geo.Location{{Lat: -41.3, Lon: 174.0}, {Lat: -41.0, Lon: 174.0}}); err != nil {
		t.Errorf("unexpected trace error: %v", err)
	}
}

func TestDipDirection(t *testing.T) {
	// northward strike dips east
	p1 := geo.Location{Lat: -41.3, Lon: 174.0}
	p2 := geo.Location{Lat: -41.0, Lon: 174.0}

	dd := DipDirectionRad(p1, p2)
	if math.Abs(dd-math.Pi/2.0) > 0.01 {
		t.Errorf("expected dip direction ~pi/2 got %f", dd)
	}

	// reversed trace dips west
	dd = DipDirectionRad(p2, p1)
	if math.Abs(dd-3.0*math.Pi/2.0) > 0.01 {
		t.Errorf("expected dip direction ~3pi/2 got %f", dd)
	}

	// result stays in [0, 2pi)
	if dd < 0 || dd >= 2*math.Pi {
		t.Errorf("dip direction %f out of range", dd)
	}
}

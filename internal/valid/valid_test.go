package valid_test

import (
	"errors"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/valid"
)

func TestSourceName(t *testing.T) {
	in := []struct {
		s   string
		bad bool
		id  string
	}{
		{s: "Wellington Fault", id: loc()},
		{s: "3514a", id: loc()},
		{s: "Alpine (Jacksons to Kaniere)", id: loc()},
		{s: "Hikurangi-3.5", id: loc()},
		{s: "Pt. Source_1", id: loc()},
		{s: "", bad: true, id: loc()},
		{s: " leading space", bad: true, id: loc()},
		{s: "-leading dash", bad: true, id: loc()},
		{s: "semi;colon", bad: true, id: loc()},
		{s: "new\nline", bad: true, id: loc()},
		{s: strings.Repeat("a", 73), bad: true, id: loc()},
	}

	for _, v := range in {
		s, err := valid.SourceName(v.s)

		if v.bad {
			if err == nil {
				t.Errorf("%s expected error for %q", v.id, v.s)
				continue
			}
			var ce eq.ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("%s expected ConfigError got %v", v.id, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("%s unexpected error for %q: %v", v.id, v.s, err)
		}
		if s != v.s {
			t.Errorf("%s expected %q got %q", v.id, v.s, s)
		}
	}
}

func loc() string {
	_, _, l, _ := runtime.Caller(1)
	return "L" + strconv.Itoa(l)
}

package model

import (
	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/eq/fault"
	"github.com/GeoNet/hazard/internal/eq/mfd"
	"github.com/GeoNet/hazard/internal/eq/surface"
	"github.com/GeoNet/hazard/internal/geo"
	"github.com/GeoNet/hazard/internal/valid"
)

// A FaultSource wraps a fault geometry and a list of magnitude-frequency
// distributions that characterize how the fault might rupture (e.g. as one
// geometry-filling event, or as multiple smaller floating events).  The full
// rupture list is materialized at construction and is immutable; a
// FaultSource is safe for unrestricted concurrent reads.
type FaultSource struct {
	name        string
	id          int
	trace       []geo.Location
	dip         float64
	width       float64
	rake        float64
	mfds        []*mfd.Sequence
	spacing     float64
	scaling     surface.Scaling
	floating    surface.Floating
	variability bool
	surf        surface.Gridded

	ruptures []*Rupture
}

func (f *FaultSource) Name() string {
	return f.name
}

func (f *FaultSource) Size() int {
	return len(f.ruptures)
}

func (f *FaultSource) ID() int {
	return f.id
}

func (f *FaultSource) Type() SourceType {
	return FaultType
}

// Location returns the closest point on the fault trace relative to the
// site.
func (f *FaultSource) Location(site geo.Location) geo.Location {
	return geo.ClosestPoint(site, f.trace)
}

func (f *FaultSource) Mfds() []*mfd.Sequence {
	return f.mfds
}

// Surface returns the gridded surface spanning the whole fault.
func (f *FaultSource) Surface() surface.Gridded {
	return f.surf
}

func (f *FaultSource) Ruptures() (*Ruptures, error) {
	return &Ruptures{size: len(f.ruptures), list: f.ruptures}, nil
}

// initRuptures materializes one rupture per (mfd bin, floating position).
// Bins below the rate floor are skipped; non-floating bins emit a single
// rupture spanning the whole surface.
func (f *FaultSource) initRuptures() error {
	for _, m := range f.mfds {
		for i := 0; i < m.Len(); i++ {
			mag := m.Mag(i)
			rate := m.Rate(i)

			if rate < eq.RateFloor {
				continue // shortcut low rates
			}

			if m.Floats() {
				floaters := f.floating.Float(f.surf, f.scaling, mag, rate, f.rake, f.variability)
				for _, fl := range floaters {
					f.ruptures = append(f.ruptures, NewRupture(mag, fl.Rate, f.rake, fl.Surface))
				}
			} else {
				f.ruptures = append(f.ruptures, NewRupture(mag, rate, f.rake, f.surf))
			}
		}
	}
	if len(f.ruptures) == 0 {
		return eq.ConfigErrorf("fault source %q has no ruptures", f.name)
	}
	return nil
}

// A FaultBuilder assembles and validates the parameters of a FaultSource.
// Each field may be set at most once and all are required.  A builder may be
// used for a single Build only; errors are recorded as fields are set and
// reported by Build.
type FaultBuilder struct {
	err   error
	built bool

	name        *string
	id          *int
	trace       []geo.Location
	dip         *float64
	width       *float64
	depth       *float64
	rake        *float64
	mfds        []*mfd.Sequence
	spacing     *float64
	scaling     surface.Scaling
	floating    surface.Floating
	variability *bool

	// interface builders swap these for the subduction domain
	checkDepth func(float64) error
	checkWidth func(float64) error
}

// NewFaultBuilder returns a single-use builder for a crustal fault source.
func NewFaultBuilder() *FaultBuilder {
	return &FaultBuilder{
		checkDepth: eq.CheckCrustalDepth,
		checkWidth: eq.CheckCrustalWidth,
	}
}

func (b *FaultBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *FaultBuilder) failDup(field string) {
	b.fail(eq.ConfigErrorf("fault builder: %s already set", field))
}

func (b *FaultBuilder) Name(s string) *FaultBuilder {
	if b.name != nil {
		b.failDup("name")
		return b
	}
	name, err := valid.SourceName(s)
	if err != nil {
		b.fail(err)
		return b
	}
	b.name = &name
	return b
}

func (b *FaultBuilder) ID(id int) *FaultBuilder {
	if b.id != nil {
		b.failDup("id")
		return b
	}
	b.id = &id
	return b
}

func (b *FaultBuilder) Trace(trace []geo.Location) *FaultBuilder {
	if b.trace != nil {
		b.failDup("trace")
		return b
	}
	if err := fault.CheckTrace(trace); err != nil {
		b.fail(err)
		return b
	}
	b.trace = trace
	return b
}

func (b *FaultBuilder) Dip(dip float64) *FaultBuilder {
	if b.dip != nil {
		b.failDup("dip")
		return b
	}
	if err := fault.CheckDip(dip); err != nil {
		b.fail(err)
		return b
	}
	b.dip = &dip
	return b
}

func (b *FaultBuilder) Width(width float64) *FaultBuilder {
	if b.width != nil {
		b.failDup("width")
		return b
	}
	if err := b.checkWidth(width); err != nil {
		b.fail(err)
		return b
	}
	b.width = &width
	return b
}

func (b *FaultBuilder) Depth(depth float64) *FaultBuilder {
	if b.depth != nil {
		b.failDup("depth")
		return b
	}
	if err := b.checkDepth(depth); err != nil {
		b.fail(err)
		return b
	}
	b.depth = &depth
	return b
}

func (b *FaultBuilder) Rake(rake float64) *FaultBuilder {
	if b.rake != nil {
		b.failDup("rake")
		return b
	}
	if err := fault.CheckRake(rake); err != nil {
		b.fail(err)
		return b
	}
	b.rake = &rake
	return b
}

func (b *FaultBuilder) Mfd(m *mfd.Sequence) *FaultBuilder {
	if m == nil {
		b.fail(eq.ConfigErrorf("fault builder: mfd is nil"))
		return b
	}
	b.mfds = append(b.mfds, m)
	return b
}

func (b *FaultBuilder) Mfds(ms []*mfd.Sequence) *FaultBuilder {
	if len(ms) == 0 {
		b.fail(eq.ConfigErrorf("fault builder: mfd list is empty"))
		return b
	}
	for _, m := range ms {
		b.Mfd(m)
	}
	return b
}

func (b *FaultBuilder) SurfaceSpacing(spacing float64) *FaultBuilder {
	if b.spacing != nil {
		b.failDup("surface spacing")
		return b
	}
	if spacing < 0.01 || spacing > 20.0 {
		b.fail(eq.ConfigErrorf("surface grid spacing %g out of range [0.01, 20.0]", spacing))
		return b
	}
	b.spacing = &spacing
	return b
}

func (b *FaultBuilder) RuptureScaling(s surface.Scaling) *FaultBuilder {
	if b.scaling != nil {
		b.failDup("rupture-scaling model")
		return b
	}
	if s == nil {
		b.fail(eq.ConfigErrorf("fault builder: rupture-scaling model is nil"))
		return b
	}
	b.scaling = s
	return b
}

func (b *FaultBuilder) RuptureFloating(f surface.Floating) *FaultBuilder {
	if b.floating != nil {
		b.failDup("rupture-floating model")
		return b
	}
	if f == nil {
		b.fail(eq.ConfigErrorf("fault builder: rupture-floating model is nil"))
		return b
	}
	b.floating = f
	return b
}

func (b *FaultBuilder) RuptureVariability(v bool) *FaultBuilder {
	if b.variability != nil {
		b.failDup("rupture-area variability flag")
		return b
	}
	b.variability = &v
	return b
}

// validate reports the first missing required field.
func (b *FaultBuilder) validate() error {
	if b.built {
		return eq.ConfigErrorf("fault builder has already been used")
	}
	if b.err != nil {
		return b.err
	}
	switch {
	case b.name == nil:
		return eq.ConfigErrorf("fault builder: name not set")
	case b.id == nil:
		return eq.ConfigErrorf("fault builder: id not set")
	case b.trace == nil:
		return eq.ConfigErrorf("fault builder: trace not set")
	case b.dip == nil:
		return eq.ConfigErrorf("fault builder: dip not set")
	case b.width == nil:
		return eq.ConfigErrorf("fault builder: width not set")
	case b.depth == nil:
		return eq.ConfigErrorf("fault builder: depth not set")
	case b.rake == nil:
		return eq.ConfigErrorf("fault builder: rake not set")
	case len(b.mfds) == 0:
		return eq.ConfigErrorf("fault builder: no mfds set")
	case b.spacing == nil:
		return eq.ConfigErrorf("fault builder: surface grid spacing not set")
	case b.scaling == nil:
		return eq.ConfigErrorf("fault builder: rupture-scaling model not set")
	case b.floating == nil:
		return eq.ConfigErrorf("fault builder: rupture-floating model not set")
	case b.variability == nil:
		return eq.ConfigErrorf("fault builder: rupture-area variability flag not set")
	}
	b.built = true
	return nil
}

// Build validates the assembled state, creates the gridded surface, and
// materializes the rupture list.  The builder cannot be reused afterwards.
func (b *FaultBuilder) Build() (*FaultSource, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	surf, err := surface.NewGridded(b.trace, *b.dip, *b.depth, *b.width, *b.spacing)
	if err != nil {
		return nil, err
	}

	f := &FaultSource{
		name:        *b.name,
		id:          *b.id,
		trace:       b.trace,
		dip:         *b.dip,
		width:       *b.width,
		rake:        *b.rake,
		mfds:        b.mfds,
		spacing:     *b.spacing,
		scaling:     b.scaling,
		floating:    b.floating,
		variability: *b.variability,
		surf:        surf,
	}

	if err := f.initRuptures(); err != nil {
		return nil, err
	}
	return f, nil
}

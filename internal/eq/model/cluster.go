package model

import (
	"github.com/GeoNet/hazard/internal/eq"
	"github.com/GeoNet/hazard/internal/eq/mfd"
	"github.com/GeoNet/hazard/internal/geo"
	"github.com/GeoNet/hazard/internal/valid"
)

// A ClusterSource wraps an ordered set of fault sources that rupture
// jointly.  It carries an aggregate annual rate distinct from any wrapped
// fault's rate and a logic-tree branch weight distinct from per-fault MFD
// weighting.
//
// Cluster hazard derives from the joint probability of ground motions from
// the wrapped faults, evaluated together by a separate downstream
// calculator; Ruptures therefore returns an eq.UnsupportedError rather than
// a flattened rupture stream.
type ClusterSource struct {
	name   string
	id     int
	rate   float64
	weight float64
	faults []*FaultSource
}

func (c *ClusterSource) Name() string {
	return c.name
}

// Size returns the number of fault sources participating in the cluster.
func (c *ClusterSource) Size() int {
	return len(c.faults)
}

func (c *ClusterSource) ID() int {
	return c.id
}

func (c *ClusterSource) Type() SourceType {
	return ClusterType
}

// Location returns the closest point across the traces of all participating
// fault sources relative to the site.
func (c *ClusterSource) Location(site geo.Location) geo.Location {
	locs := make([]geo.Location, 0, len(c.faults))
	for _, f := range c.faults {
		locs = append(locs, f.Location(site))
	}
	return geo.ClosestPoint(site, locs)
}

// Mfds returns the wrapped faults' distributions scaled by the cluster
// rate.
func (c *ClusterSource) Mfds() []*mfd.Sequence {
	var out []*mfd.Sequence
	for _, f := range c.faults {
		for _, m := range f.Mfds() {
			out = append(out, m.Scaled(c.rate))
		}
	}
	return out
}

// Rate returns the aggregate annual rate (1 / return period) of the
// cluster.
func (c *ClusterSource) Rate() float64 {
	return c.rate
}

// Weight returns the logic-tree branch weight applicable to this cluster.
func (c *ClusterSource) Weight() float64 {
	return c.weight
}

// Faults returns the fault sources that participate in the cluster.
func (c *ClusterSource) Faults() []*FaultSource {
	return c.faults
}

// Ruptures fails; cluster sources are evaluated jointly and cannot be
// enumerated directly.
func (c *ClusterSource) Ruptures() (*Ruptures, error) {
	return nil, eq.UnsupportedError{Capability: "rupture enumeration on cluster source"}
}

// A ClusterBuilder assembles and validates a ClusterSource.  Single use.
type ClusterBuilder struct {
	err   error
	built bool

	name   *string
	id     *int
	rate   *float64
	weight *float64
	faults []*FaultSource
}

// NewClusterBuilder returns a single-use builder for a cluster source.
func NewClusterBuilder() *ClusterBuilder {
	return &ClusterBuilder{}
}

func (b *ClusterBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *ClusterBuilder) Name(s string) *ClusterBuilder {
	if b.name != nil {
		b.fail(eq.ConfigErrorf("cluster builder: name already set"))
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

func (b *ClusterBuilder) ID(id int) *ClusterBuilder {
	if b.id != nil {
		b.fail(eq.ConfigErrorf("cluster builder: id already set"))
		return b
	}
	b.id = &id
	return b
}

func (b *ClusterBuilder) Rate(rate float64) *ClusterBuilder {
	if b.rate != nil {
		b.fail(eq.ConfigErrorf("cluster builder: rate already set"))
		return b
	}
	if rate <= 0 {
		b.fail(eq.ConfigErrorf("cluster rate %g is not positive", rate))
		return b
	}
	b.rate = &rate
	return b
}

func (b *ClusterBuilder) Weight(weight float64) *ClusterBuilder {
	if b.weight != nil {
		b.fail(eq.ConfigErrorf("cluster builder: weight already set"))
		return b
	}
	if weight <= 0 || weight > 1 {
		b.fail(eq.ConfigErrorf("cluster weight %g out of range (0, 1]", weight))
		return b
	}
	b.weight = &weight
	return b
}

func (b *ClusterBuilder) Faults(faults []*FaultSource) *ClusterBuilder {
	if b.faults != nil {
		b.fail(eq.ConfigErrorf("cluster builder: faults already set"))
		return b
	}
	if len(faults) == 0 {
		b.fail(eq.ConfigErrorf("cluster builder: fault source set is empty"))
		return b
	}
	b.faults = faults
	return b
}

// Build validates the assembled state.  The builder cannot be reused
// afterwards.
func (b *ClusterBuilder) Build() (*ClusterSource, error) {
	if b.built {
		return nil, eq.ConfigErrorf("cluster builder has already been used")
	}
	if b.err != nil {
		return nil, b.err
	}
	switch {
	case b.name == nil:
		return nil, eq.ConfigErrorf("cluster builder: name not set")
	case b.id == nil:
		return nil, eq.ConfigErrorf("cluster builder: id not set")
	case b.rate == nil:
		return nil, eq.ConfigErrorf("cluster builder: rate not set")
	case b.weight == nil:
		return nil, eq.ConfigErrorf("cluster builder: weight not set")
	case b.faults == nil:
		return nil, eq.ConfigErrorf("cluster builder: no fault sources set")
	}
	b.built = true
	return &ClusterSource{
		name:   *b.name,
		id:     *b.id,
		rate:   *b.rate,
		weight: *b.weight,
		faults: b.faults,
	}, nil
}

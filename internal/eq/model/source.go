// Package model provides earthquake source representations: point sources
// in three finiteness flavors, fault and subduction interface sources with
// materialized rupture lists, and cluster sources.  Each source enumerates
// the finite set of ruptures it can produce, with magnitudes, annual rates,
// rakes, and surface geometry for site distance metrics.
package model

import (
	"github.com/GeoNet/hazard/internal/eq/mfd"
	"github.com/GeoNet/hazard/internal/geo"
)

// A SourceType tags the geologic flavor of a source.
type SourceType int

const (
	GridType SourceType = iota
	AreaType
	FaultType
	InterfaceType
	ClusterType
)

func (t SourceType) String() string {
	switch t {
	case GridType:
		return "grid"
	case AreaType:
		return "area"
	case FaultType:
		return "fault"
	case InterfaceType:
		return "interface"
	case ClusterType:
		return "cluster"
	}
	return "unknown"
}

// A Source is a parameterized earthquake source.  Fully constructed Sources
// are immutable and safe for concurrent reads; enumeration sessions obtained
// from Ruptures are not, see Ruptures.
type Source interface {
	// Name identifies the source for reporting.
	Name() string

	// Size is the number of ruptures enumeration will produce.  For point
	// sources some of these may carry zero rate.
	Size() int

	// ID is the numeric source id, or -1 for sources addressed positionally
	// by a parent set.
	ID() int

	// Type returns the source type tag.
	Type() SourceType

	// Location returns the point of the source geometry closest to the
	// site, for coarse distance filtering.
	Location(site geo.Location) geo.Location

	// Mfds returns the magnitude-frequency content of the source.
	Mfds() []*mfd.Sequence

	// Ruptures starts a rupture enumeration session.  Cluster sources do
	// not support direct enumeration and return an eq.UnsupportedError.
	Ruptures() (*Ruptures, error)
}

// Ruptures is a single-use rupture enumeration session.
//
// For point sources the session owns one rupture and surface instance that
// is overwritten on every Next; the value returned by Rupture is only valid
// until Next is called again and must not be shared between goroutines.
// Fault and interface sessions walk an immutable list and carry no such
// hazard, but the one-session-per-goroutine contract applies regardless.
type Ruptures struct {
	size  int
	caret int

	// exactly one of update or list is set
	update func(index int)
	rup    *Rupture
	list   []*Rupture
}

// Next advances to the next rupture, returning false when the session is
// exhausted.
func (r *Ruptures) Next() bool {
	if r.caret >= r.size {
		return false
	}
	if r.update != nil {
		r.update(r.caret)
	} else {
		r.rup = r.list[r.caret]
	}
	r.caret++
	return true
}

// Rupture returns the current rupture.  Only valid after a call to Next that
// returned true, and only until the following call to Next.
func (r *Ruptures) Rupture() *Rupture {
	return r.rup
}

// Package modelfile loads earthquake source model definitions from TOML
// files and builds the sources.  A model file holds fault, interface and
// cluster tables; grids are assembled programmatically and do not appear in
// model files.
package modelfile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/GeoNet/hazard/internal/eq/mfd"
	"github.com/GeoNet/hazard/internal/eq/model"
	"github.com/GeoNet/hazard/internal/eq/surface"
	"github.com/GeoNet/hazard/internal/geo"
)

// DefaultSpacing in km is used for fault surface grids when a fault table
// does not set spacing.
const DefaultSpacing = 1.0

// File is the TOML shape of a source model definition.
type File struct {
	Title      string      `toml:"title"`
	Faults     []Fault     `toml:"fault"`
	Interfaces []Interface `toml:"interface"`
	Clusters   []Cluster   `toml:"cluster"`
}

// Mfd is one magnitude-frequency distribution table.
type Mfd struct {
	Mags   []float64 `toml:"mags"`
	Rates  []float64 `toml:"rates"`
	Floats bool      `toml:"floats"`
}

// Fault is one crustal fault table.  Trace points are [lon, lat] or
// [lon, lat, depth] arrays.
type Fault struct {
	Name        string      `toml:"name"`
	ID          int         `toml:"id"`
	Trace       [][]float64 `toml:"trace"`
	Dip         float64     `toml:"dip"`
	Width       float64     `toml:"width"`
	Depth       float64     `toml:"depth"`
	Rake        float64     `toml:"rake"`
	Spacing     float64     `toml:"spacing"`
	Scaling     string      `toml:"scaling"`
	Variability bool        `toml:"variability"`
	Mfds        []Mfd       `toml:"mfd"`
}

// Interface is one subduction interface table.  When lower_trace is set the
// surface derives from the two traces and dip, depth and width may be
// omitted.
type Interface struct {
	Fault
	LowerTrace [][]float64 `toml:"lower_trace"`
}

// Cluster is one cluster table wrapping inline fault tables.
type Cluster struct {
	Name   string  `toml:"name"`
	ID     int     `toml:"id"`
	Rate   float64 `toml:"rate"`
	Weight float64 `toml:"weight"`
	Faults []Fault `toml:"fault"`
}

// A Set holds the built sources of a model file, addressable by id.
type Set struct {
	Title   string
	Sources []model.Source

	byID map[int]model.Source
}

// Get returns the source with id.
func (s *Set) Get(id int) (model.Source, bool) {
	src, ok := s.byID[id]
	return src, ok
}

// Load reads and builds the model file at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("model file %s: %w", path, err)
	}

	return s, nil
}

// Parse builds the sources defined by TOML data.
func Parse(data []byte) (*Set, error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	s := &Set{
		Title: f.Title,
		byID:  make(map[int]model.Source),
	}

	for _, d := range f.Faults {
		src, err := buildFault(d)
		if err != nil {
			return nil, fmt.Errorf("fault %q: %w", d.Name, err)
		}
		if err := s.add(src); err != nil {
			return nil, err
		}
	}

	for _, d := range f.Interfaces {
		src, err := buildInterface(d)
		if err != nil {
			return nil, fmt.Errorf("interface %q: %w", d.Name, err)
		}
		if err := s.add(src); err != nil {
			return nil, err
		}
	}

	for _, d := range f.Clusters {
		src, err := buildCluster(d)
		if err != nil {
			return nil, fmt.Errorf("cluster %q: %w", d.Name, err)
		}
		if err := s.add(src); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Set) add(src model.Source) error {
	if _, ok := s.byID[src.ID()]; ok {
		return fmt.Errorf("duplicate source id %d", src.ID())
	}
	s.byID[src.ID()] = src
	s.Sources = append(s.Sources, src)
	return nil
}

func buildFault(d Fault) (*model.FaultSource, error) {
	trace, err := toTrace(d.Trace)
	if err != nil {
		return nil, err
	}

	scaling, err := scalingFor(d.Scaling)
	if err != nil {
		return nil, err
	}

	mfds, err := toMfds(d.Mfds)
	if err != nil {
		return nil, err
	}

	return model.NewFaultBuilder().
		Name(d.Name).
		ID(d.ID).
		Trace(trace).
		Dip(d.Dip).
		Width(d.Width).
		Depth(d.Depth).
		Rake(d.Rake).
		Mfds(mfds).
		SurfaceSpacing(spacing(d.Spacing)).
		RuptureScaling(scaling).
		RuptureFloating(surface.DefaultFloating{}).
		RuptureVariability(d.Variability).
		Build()
}

func buildInterface(d Interface) (*model.InterfaceSource, error) {
	trace, err := toTrace(d.Trace)
	if err != nil {
		return nil, err
	}

	scaling, err := scalingFor(d.Scaling)
	if err != nil {
		return nil, err
	}

	mfds, err := toMfds(d.Mfds)
	if err != nil {
		return nil, err
	}

	b := model.NewInterfaceBuilder()
	b.Name(d.Name).
		ID(d.ID).
		Trace(trace).
		Rake(d.Rake).
		Mfds(mfds).
		SurfaceSpacing(spacing(d.Spacing)).
		RuptureScaling(scaling).
		RuptureFloating(surface.DefaultFloating{}).
		RuptureVariability(d.Variability)

	if d.LowerTrace != nil {
		lower, err := toTrace(d.LowerTrace)
		if err != nil {
			return nil, err
		}
		b.LowerTrace(lower)
	} else {
		b.Dip(d.Dip).Width(d.Width).Depth(d.Depth)
	}

	return b.Build()
}

func buildCluster(d Cluster) (*model.ClusterSource, error) {
	if len(d.Faults) == 0 {
		return nil, fmt.Errorf("cluster has no fault tables")
	}

	faults := make([]*model.FaultSource, 0, len(d.Faults))
	for _, fd := range d.Faults {
		f, err := buildFault(fd)
		if err != nil {
			return nil, fmt.Errorf("fault %q: %w", fd.Name, err)
		}
		faults = append(faults, f)
	}

	return model.NewClusterBuilder().
		Name(d.Name).
		ID(d.ID).
		Rate(d.Rate).
		Weight(d.Weight).
		Faults(faults).
		Build()
}

func toTrace(points [][]float64) ([]geo.Location, error) {
	trace := make([]geo.Location, 0, len(points))
	for i, p := range points {
		switch len(p) {
		case 2:
			trace = append(trace, geo.Location{Lon: p[0], Lat: p[1]})
		case 3:
			trace = append(trace, geo.Location{Lon: p[0], Lat: p[1], Depth: p[2]})
		default:
			return nil, fmt.Errorf("trace point %d has %d values, want [lon, lat] or [lon, lat, depth]", i, len(p))
		}
	}
	return trace, nil
}

func toMfds(in []Mfd) ([]*mfd.Sequence, error) {
	out := make([]*mfd.Sequence, 0, len(in))
	for i, m := range in {
		s, err := mfd.NewSequence(m.Mags, m.Rates, m.Floats)
		if err != nil {
			return nil, fmt.Errorf("mfd %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

func scalingFor(name string) (surface.Scaling, error) {
	switch name {
	case "", "peer":
		return surface.PeerArea{}, nil
	case "peer-uncorrected":
		return surface.PeerAreaUncorrected{}, nil
	}
	return nil, fmt.Errorf("unknown scaling model %q", name)
}

func spacing(v float64) float64 {
	if v == 0 {
		return DefaultSpacing
	}
	return v
}

// Package eq holds earthquake domain constants, range checks, and the two
// error kinds produced by source construction and capability queries.
package eq

import (
	"fmt"
)

// Depth and width bounds in km for the crustal and subduction-interface
// source domains.  Values outside these ranges indicate a misconfigured
// source model.
const (
	MinDepth          = 0.0
	MaxCrustalDepth   = 40.0
	MaxCrustalWidth   = 60.0
	MaxInterfaceDepth = 900.0
	MaxInterfaceWidth = 200.0
)

// Ruptures with annual rates below RateFloor contribute nothing to hazard
// and are skipped when materializing fault rupture lists.
const RateFloor = 1e-14

// A ConfigError reports an invalid or incomplete source configuration.  It
// is fatal to the construction of the source and of any enclosing source
// collection.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string {
	return "eq: config: " + e.Msg
}

// ConfigErrorf formats a ConfigError.
func ConfigErrorf(format string, args ...interface{}) error {
	return ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// An UnsupportedError reports a query for a capability a source or surface
// variant does not define, e.g. the strike of a true point surface.  It
// indicates a programming contract violation rather than a runtime
// condition and is never retried.
type UnsupportedError struct {
	Capability string
}

func (e UnsupportedError) Error() string {
	return "eq: unsupported capability: " + e.Capability
}

// CheckCrustalDepth validates a crustal source depth in km.
func CheckCrustalDepth(depth float64) error {
	if depth < MinDepth || depth > MaxCrustalDepth {
		return ConfigErrorf("crustal depth %g out of range [%g, %g]", depth, MinDepth, MaxCrustalDepth)
	}
	return nil
}

// CheckCrustalWidth validates a crustal source down-dip width in km.
func CheckCrustalWidth(width float64) error {
	if width <= 0 || width > MaxCrustalWidth {
		return ConfigErrorf("crustal width %g out of range (0, %g]", width, MaxCrustalWidth)
	}
	return nil
}

// CheckInterfaceDepth validates a subduction interface depth in km.
func CheckInterfaceDepth(depth float64) error {
	if depth < MinDepth || depth > MaxInterfaceDepth {
		return ConfigErrorf("interface depth %g out of range [%g, %g]", depth, MinDepth, MaxInterfaceDepth)
	}
	return nil
}

// CheckInterfaceWidth validates a subduction interface down-dip width in km.
func CheckInterfaceWidth(width float64) error {
	if width <= 0 || width > MaxInterfaceWidth {
		return ConfigErrorf("interface width %g out of range (0, %g]", width, MaxInterfaceWidth)
	}
	return nil
}

// Package query filters decoded GDB collections. Filters operate on
// in-memory slices; the decoder has already materialized everything,
// so there is no index to consult.
package query

import (
	"fmt"
	"strings"

	"github.com/waypt/gdbkit/pkg/gdb"
)

// WaypointFilter selects waypoints from a decoded collection. Zero
// bounds are unconstrained; Shortname matches case-insensitively as a
// substring.
type WaypointFilter struct {
	MinLat *float64
	MaxLat *float64
	MinLon *float64
	MaxLon *float64

	Shortname string

	// RequireAltitude keeps only waypoints whose record carried an
	// altitude value.
	RequireAltitude bool
}

// Validate checks that the filter is properly formed.
func (f *WaypointFilter) Validate() error {
	if f.MinLat != nil && f.MaxLat != nil && *f.MinLat > *f.MaxLat {
		return fmt.Errorf("invalid latitude range: %v > %v", *f.MinLat, *f.MaxLat)
	}
	if f.MinLon != nil && f.MaxLon != nil && *f.MinLon > *f.MaxLon {
		return fmt.Errorf("invalid longitude range: %v > %v", *f.MinLon, *f.MaxLon)
	}
	for _, b := range []*float64{f.MinLat, f.MaxLat} {
		if b != nil && (*b < -90 || *b > 90) {
			return fmt.Errorf("latitude bound %v out of range", *b)
		}
	}
	for _, b := range []*float64{f.MinLon, f.MaxLon} {
		if b != nil && (*b < -180 || *b > 180) {
			return fmt.Errorf("longitude bound %v out of range", *b)
		}
	}
	return nil
}

// Apply returns the waypoints matching the filter, in input order.
func (f *WaypointFilter) Apply(in []gdb.Waypoint) []gdb.Waypoint {
	out := make([]gdb.Waypoint, 0, len(in))
	for _, w := range in {
		if f.matches(w) {
			out = append(out, w)
		}
	}
	return out
}

func (f *WaypointFilter) matches(w gdb.Waypoint) bool {
	if f.MinLat != nil && w.Lat < *f.MinLat {
		return false
	}
	if f.MaxLat != nil && w.Lat > *f.MaxLat {
		return false
	}
	if f.MinLon != nil && w.Lon < *f.MinLon {
		return false
	}
	if f.MaxLon != nil && w.Lon > *f.MaxLon {
		return false
	}
	if f.Shortname != "" && !strings.Contains(strings.ToLower(w.Shortname), strings.ToLower(f.Shortname)) {
		return false
	}
	if f.RequireAltitude && w.Altitude == nil {
		return false
	}
	return true
}

// TrackFilter selects tracks from a decoded collection.
type TrackFilter struct {
	// Name matches case-insensitively as a substring.
	Name string

	// MinPoints keeps only tracks with at least this many points.
	MinPoints int
}

// Validate checks that the filter is properly formed.
func (f *TrackFilter) Validate() error {
	if f.MinPoints < 0 {
		return fmt.Errorf("negative MinPoints: %d", f.MinPoints)
	}
	return nil
}

// Apply returns the tracks matching the filter, in input order.
func (f *TrackFilter) Apply(in []gdb.Track) []gdb.Track {
	out := make([]gdb.Track, 0, len(in))
	for _, t := range in {
		if f.Name != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(f.Name)) {
			continue
		}
		if len(t.Points) < f.MinPoints {
			continue
		}
		out = append(out, t)
	}
	return out
}

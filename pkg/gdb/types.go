package gdb

import "time"

// CreatedBy identifies the program that wrote a GDB file, derived
// from the creator string in the file header.
type CreatedBy int

const (
	CreatedByUnknown CreatedBy = iota
	CreatedByMapSource
	CreatedByMapSourceBeta
)

func (c CreatedBy) String() string {
	switch c {
	case CreatedByMapSource:
		return "MapSource"
	case CreatedByMapSourceBeta:
		return "MapSource-Beta"
	default:
		return "unknown"
	}
}

// Header holds the format version and provenance metadata parsed from
// the top of a GDB stream. It is created exactly once per input and
// never modified afterwards.
type Header struct {
	// Version is the GDB format version, 1 through 3. It selects the
	// waypoint field grammar.
	Version int

	// CreatedBy is the program identified by the creator record.
	CreatedBy CreatedBy

	// SignedBy is the raw signature string; it always contains either
	// "MapSource" or "BaseCamp".
	SignedBy string
}

// Waypoint is a single decoded waypoint record. Optional fields are
// pointers: nil means the record carried no value, which is distinct
// from a zero value.
type Waypoint struct {
	// Shortname is the short waypoint identifier, distinct from the
	// free-text description.
	Shortname string `json:"shortname"`

	// Lat and Lon are in degrees, converted from the stored
	// semicircle encoding.
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	// Class controls how the trailing URL string of version 1-2
	// records is interpreted: nonzero means it is a description.
	Class int32 `json:"class"`

	// Altitude is in meters. Stored values at or above 1.0e24 are the
	// format's "no altitude" sentinel and are discarded.
	Altitude *float64 `json:"altitude,omitempty"`

	Notes     string   `json:"notes,omitempty"`
	Proximity *float64 `json:"proximity,omitempty"`
	Icon      int32    `json:"icon"`

	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Facility string `json:"facility,omitempty"`

	// Address is only present in version 3 files.
	Address string `json:"address,omitempty"`

	// Depth is part of the waypoint model but is not covered by the
	// decoded byte grammar; it remains unset.
	Depth *float64 `json:"depth,omitempty"`

	Description string `json:"description,omitempty"`

	// URLs preserves insertion order from the record.
	URLs []string `json:"urls,omitempty"`

	Category     bool       `json:"category"`
	Temperature  *float64   `json:"temperature,omitempty"`
	CreationTime *time.Time `json:"creation_time,omitempty"`
}

// Trackpoint is one point of a track: a coordinate pair plus the same
// four presence-flagged optional fields a waypoint carries.
type Trackpoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	Altitude     *float64   `json:"altitude,omitempty"`
	CreationTime *time.Time `json:"creation_time,omitempty"`
	Depth        *float64   `json:"depth,omitempty"`
	Temperature  *float64   `json:"temperature,omitempty"`
}

// Track is a decoded track record. It owns its points exclusively.
type Track struct {
	Name string `json:"name"`

	// ColorIndex is the raw stored color index; Color is its resolved
	// name, empty when the index is outside the known table.
	ColorIndex int32  `json:"color_index"`
	Color      string `json:"color,omitempty"`

	Points []Trackpoint `json:"points"`
}

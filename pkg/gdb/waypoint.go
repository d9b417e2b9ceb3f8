package gdb

import (
	"time"

	"github.com/waypt/gdbkit/pkg/codec"
)

// noAltitude is the format's sentinel for "no altitude recorded":
// stored doubles at or above it are discarded rather than kept.
const noAltitude = 1.0e24

// decodeWaypoint decodes one waypoint record payload. The field
// grammar shares a common prefix and suffix across format versions
// and branches in the middle: versions 1-2 carry a single URL slot
// whose meaning depends on the class code, version 3 carries an
// address, a description and a counted URL list.
func decodeWaypoint(payload []byte, version int) (Waypoint, error) {
	c := codec.NewCursor(payload)
	w := Waypoint{}

	// Tag byte, already classified by the dispatcher.
	if err := c.Skip(1); err != nil {
		return Waypoint{}, err
	}

	var err error
	if w.Shortname, err = c.String(); err != nil {
		return Waypoint{}, err
	}
	if w.Class, err = c.Int32(); err != nil {
		return Waypoint{}, err
	}

	// One unused string, then 22 bytes of padding with unconfirmed
	// semantics.
	if _, err = c.String(); err != nil {
		return Waypoint{}, err
	}
	if err = c.Skip(22); err != nil {
		return Waypoint{}, err
	}

	lat, err := c.Int32()
	if err != nil {
		return Waypoint{}, err
	}
	lon, err := c.Int32()
	if err != nil {
		return Waypoint{}, err
	}
	w.Lat = Degrees(lat)
	w.Lon = Degrees(lon)

	hasAlt, err := c.Bool()
	if err != nil {
		return Waypoint{}, err
	}
	if hasAlt {
		alt, err := c.Double()
		if err != nil {
			return Waypoint{}, err
		}
		if alt < noAltitude {
			w.Altitude = &alt
		}
	}

	if w.Notes, err = c.String(); err != nil {
		return Waypoint{}, err
	}

	hasProximity, err := c.Bool()
	if err != nil {
		return Waypoint{}, err
	}
	if hasProximity {
		prox, err := c.Double()
		if err != nil {
			return Waypoint{}, err
		}
		w.Proximity = &prox
	}

	// Display mode and color, both unused.
	if err = c.Skip(4); err != nil {
		return Waypoint{}, err
	}
	if err = c.Skip(4); err != nil {
		return Waypoint{}, err
	}

	if w.Icon, err = c.Int32(); err != nil {
		return Waypoint{}, err
	}
	if w.City, err = c.String(); err != nil {
		return Waypoint{}, err
	}
	if w.State, err = c.String(); err != nil {
		return Waypoint{}, err
	}
	if w.Facility, err = c.String(); err != nil {
		return Waypoint{}, err
	}
	if err = c.Skip(1); err != nil {
		return Waypoint{}, err
	}

	var legacyFlag bool
	if version <= 2 {
		if legacyFlag, err = decodeWaypointV1(c, &w); err != nil {
			return Waypoint{}, err
		}
	} else {
		if err = decodeWaypointV3(c, &w); err != nil {
			return Waypoint{}, err
		}
	}

	category, err := c.Int16()
	if err != nil {
		return Waypoint{}, err
	}
	w.Category = category != 0

	hasTemperature, err := c.Bool()
	if err != nil {
		return Waypoint{}, err
	}
	if hasTemperature {
		temp, err := c.Double()
		if err != nil {
			return Waypoint{}, err
		}
		w.Temperature = &temp
	}

	if version <= 2 && legacyFlag {
		if err = c.Skip(1); err != nil {
			return Waypoint{}, err
		}
	}

	hasCreation, err := c.Bool()
	if err != nil {
		return Waypoint{}, err
	}
	if hasCreation {
		secs, err := c.Int32()
		if err != nil {
			return Waypoint{}, err
		}
		t := time.Unix(int64(secs), 0).UTC()
		w.CreationTime = &t
	}

	return w, nil
}

// decodeWaypointV1 handles the version 1-2 middle section. The
// returned legacy flag also controls a one-byte skip in the common
// suffix.
func decodeWaypointV1(c *codec.Cursor, w *Waypoint) (bool, error) {
	if err := c.Skip(2); err != nil {
		return false, err
	}

	legacyFlag, err := c.Bool()
	if err != nil {
		return false, err
	}
	if legacyFlag {
		err = c.Skip(2)
	} else {
		err = c.Skip(3)
	}
	if err != nil {
		return false, err
	}

	if _, err = c.String(); err != nil { // unused
		return false, err
	}

	// The URL slot: for nonzero class codes it holds a free-text
	// description instead of a URL.
	url, err := c.String()
	if err != nil {
		return false, err
	}
	if w.Class != 0 {
		w.Description = url
	} else if url != "" {
		w.URLs = append(w.URLs, url)
	}

	return legacyFlag, nil
}

// decodeWaypointV3 handles the version 3 middle section.
func decodeWaypointV3(c *codec.Cursor, w *Waypoint) error {
	var err error
	if w.Address, err = c.String(); err != nil {
		return err
	}

	// 5 bytes with unconfirmed purpose, preserved for compatibility.
	if err = c.Skip(5); err != nil {
		return err
	}

	if w.Description, err = c.String(); err != nil {
		return err
	}

	urlCount, err := c.Int32()
	if err != nil {
		return err
	}
	for i := int32(0); i < urlCount; i++ {
		url, err := c.String()
		if err != nil {
			return err
		}
		if url != "" {
			w.URLs = append(w.URLs, url)
		}
	}

	return nil
}

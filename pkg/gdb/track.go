package gdb

import (
	"fmt"
	"time"

	"github.com/waypt/gdbkit/pkg/codec"
)

// decodeTrack decodes one track record payload: a fixed header
// followed by the declared number of trackpoints packed back to back.
// The declared count is honored exactly; a short buffer is a
// truncation error.
func decodeTrack(payload []byte) (Track, error) {
	c := codec.NewCursor(payload)
	t := Track{}

	// Tag byte, already classified by the dispatcher.
	if err := c.Skip(1); err != nil {
		return Track{}, err
	}

	var err error
	if t.Name, err = c.String(); err != nil {
		return Track{}, err
	}

	// One unused byte between the name and the color index.
	if err = c.Skip(1); err != nil {
		return Track{}, err
	}

	if t.ColorIndex, err = c.Int32(); err != nil {
		return Track{}, err
	}
	t.Color = ColorName(t.ColorIndex)

	count, err := c.Int32()
	if err != nil {
		return Track{}, err
	}
	if count < 0 {
		return Track{}, &InvalidFormatError{Reason: fmt.Sprintf("negative trackpoint count %d", count)}
	}

	points := make([]Trackpoint, 0, count)
	for i := int32(0); i < count; i++ {
		p, err := decodeTrackpoint(c)
		if err != nil {
			return Track{}, err
		}
		points = append(points, p)
	}
	t.Points = points

	return t, nil
}

func decodeTrackpoint(c *codec.Cursor) (Trackpoint, error) {
	p := Trackpoint{}

	lat, err := c.Int32()
	if err != nil {
		return Trackpoint{}, err
	}
	lon, err := c.Int32()
	if err != nil {
		return Trackpoint{}, err
	}
	p.Lat = Degrees(lat)
	p.Lon = Degrees(lon)

	hasAlt, err := c.Bool()
	if err != nil {
		return Trackpoint{}, err
	}
	if hasAlt {
		alt, err := c.Double()
		if err != nil {
			return Trackpoint{}, err
		}
		if alt < noAltitude {
			p.Altitude = &alt
		}
	}

	hasCreation, err := c.Bool()
	if err != nil {
		return Trackpoint{}, err
	}
	if hasCreation {
		secs, err := c.Int32()
		if err != nil {
			return Trackpoint{}, err
		}
		t := time.Unix(int64(secs), 0).UTC()
		p.CreationTime = &t
	}

	hasDepth, err := c.Bool()
	if err != nil {
		return Trackpoint{}, err
	}
	if hasDepth {
		depth, err := c.Double()
		if err != nil {
			return Trackpoint{}, err
		}
		p.Depth = &depth
	}

	hasTemperature, err := c.Bool()
	if err != nil {
		return Trackpoint{}, err
	}
	if hasTemperature {
		temp, err := c.Double()
		if err != nil {
			return Trackpoint{}, err
		}
		p.Temperature = &temp
	}

	return p, nil
}

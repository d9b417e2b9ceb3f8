package gdb

import (
	"fmt"
	"io"

	"github.com/waypt/gdbkit/pkg/codec"
)

// Reader decodes a GDB stream. It borrows the underlying byte source:
// opening and closing it is the caller's responsibility. The source
// is consumed exactly once, on the first accessor call; subsequent
// calls return the memoized collections without touching it again.
//
// Reader is not safe for concurrent use. Decoding is strictly
// sequential and a record either decodes completely or fails; the
// first error aborts the whole parse and is returned from every
// accessor thereafter.
type Reader struct {
	src io.Reader

	parsed    bool
	err       error
	header    *Header
	waypoints []Waypoint
	tracks    []Track
}

// NewReader creates a Reader over src. No bytes are read until the
// first accessor call.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// Header returns the parsed file header.
func (r *Reader) Header() (*Header, error) {
	if err := r.parse(); err != nil {
		return nil, err
	}
	return r.header, nil
}

// Waypoints returns all decoded waypoint records in stream order.
func (r *Reader) Waypoints() ([]Waypoint, error) {
	if err := r.parse(); err != nil {
		return nil, err
	}
	return r.waypoints, nil
}

// Tracks returns all decoded track records in stream order.
func (r *Reader) Tracks() ([]Track, error) {
	if err := r.parse(); err != nil {
		return nil, err
	}
	return r.tracks, nil
}

// parse runs the full decode once and memoizes the outcome, error
// included.
func (r *Reader) parse() error {
	if r.parsed {
		return r.err
	}
	r.parsed = true

	data, err := io.ReadAll(r.src)
	if err != nil {
		r.err = fmt.Errorf("reading gdb stream: %w", err)
		return r.err
	}

	c := codec.NewCursor(data)

	header, err := parseHeader(c)
	if err != nil {
		r.err = err
		return r.err
	}
	r.header = header

	r.err = r.readRecords(c)
	return r.err
}

// readRecords runs the dispatch loop: classify each record by its tag
// byte and route it to the matching decoder until the terminator
// record. Unrecognized tags are skipped for forward compatibility.
func (r *Reader) readRecords(c *codec.Cursor) error {
	for {
		rec, err := readRecord(c)
		if err != nil {
			return err
		}

		switch rec.tag {
		case tagWaypoint:
			w, err := decodeWaypoint(rec.payload, r.header.Version)
			if err != nil {
				return err
			}
			r.waypoints = append(r.waypoints, w)
		case tagTrack:
			t, err := decodeTrack(rec.payload)
			if err != nil {
				return err
			}
			r.tracks = append(r.tracks, t)
		case tagTerminator:
			// No further records are read, even if bytes follow.
			return nil
		default:
			// Undecoded record kind (routes among them).
		}
	}
}

// Package gdbtest builds synthetic GDB byte streams for tests of
// packages that consume decoded GDB data. Only the fields tests
// actually assert on are settable; everything else is zeroed padding.
package gdbtest

import (
	"encoding/binary"
)

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func cstr(s string) []byte {
	return append([]byte(s), 0)
}

func record(payload []byte) []byte {
	out := le32(int32(len(payload) - 1))
	return append(out, payload...)
}

func semicircles(deg float64) int32 {
	return int32(deg / 180.0 * 2147483648.0)
}

// Stream assembles a complete GDB byte stream: a valid header for the
// given format version followed by the records, each length-prefixed.
func Stream(version int, records ...[]byte) []byte {
	out := []byte("MsRcf\x00")
	out = append(out, record([]byte{'D', byte('k' + version - 1)})...)
	out = append(out, record(cstr("MapSource SQA"))...)
	out = append(out, cstr("MapSource")...) // exactly 10 bytes
	for _, r := range records {
		out = append(out, record(r)...)
	}
	return out
}

// Waypoint builds a minimal waypoint record payload for the given
// format version: coordinates set, every optional field absent.
func Waypoint(version int, shortname string, latDeg, lonDeg float64) []byte {
	out := []byte{'W'}
	out = append(out, cstr(shortname)...)
	out = append(out, le32(0)...)          // class
	out = append(out, cstr("")...)         // unused string
	out = append(out, make([]byte, 22)...) // padding
	out = append(out, le32(semicircles(latDeg))...)
	out = append(out, le32(semicircles(lonDeg))...)
	out = append(out, 0)           // no altitude
	out = append(out, cstr("")...) // notes
	out = append(out, 0)           // no proximity
	out = append(out, le32(0)...)  // display mode
	out = append(out, le32(0)...)  // color
	out = append(out, le32(0)...)  // icon
	out = append(out, cstr("")...) // city
	out = append(out, cstr("")...) // state
	out = append(out, cstr("")...) // facility
	out = append(out, 0)

	if version <= 2 {
		out = append(out, 0, 0)
		out = append(out, 0)       // legacy flag off
		out = append(out, 0, 0, 0) // 3-byte skip
		out = append(out, cstr("")...)
		out = append(out, cstr("")...) // url slot
	} else {
		out = append(out, cstr("")...)        // address
		out = append(out, make([]byte, 5)...) // padding
		out = append(out, cstr("")...)        // description
		out = append(out, le32(0)...)         // url count
	}

	out = append(out, 0, 0) // category
	out = append(out, 0)    // no temperature
	out = append(out, 0)    // no creation time
	return out
}

// Track builds a track record payload with the given points, each a
// lat/lon pair in degrees with no optional fields.
func Track(name string, colorIdx int32, points ...[2]float64) []byte {
	out := []byte{'T'}
	out = append(out, cstr(name)...)
	out = append(out, 0) // unused
	out = append(out, le32(colorIdx)...)
	out = append(out, le32(int32(len(points)))...)
	for _, p := range points {
		out = append(out, le32(semicircles(p[0]))...)
		out = append(out, le32(semicircles(p[1]))...)
		out = append(out, 0, 0, 0, 0) // all optional fields absent
	}
	return out
}

// Terminator is the 'V' record payload that ends a stream.
func Terminator() []byte {
	return []byte{'V'}
}

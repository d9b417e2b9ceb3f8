package gdb

import (
	"encoding/binary"
	"math"
)

// Byte-stream builders shared by the decoder tests.

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func le16(v int16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return b
}

func lefloat(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

func cstr(s string) []byte {
	return append([]byte(s), 0)
}

// rec wraps a payload as a length-prefixed record: the stored length
// is one less than the payload size.
func rec(payload []byte) []byte {
	out := le32(int32(len(payload) - 1))
	return append(out, payload...)
}

// semicircles converts degrees back to the stored int32 encoding.
func semicircles(deg float64) int32 {
	return int32(deg / 180.0 * 2147483648.0)
}

// headerBytes builds a complete valid file header: magic, version
// record, creator record and signature field.
func headerBytes(versionByte byte, creator, signer string) []byte {
	out := []byte("MsRcf\x00")
	out = append(out, rec([]byte{'D', versionByte})...)
	out = append(out, rec(cstr(creator))...)

	sig := cstr(signer)
	for len(sig) < 10 {
		sig = append(sig, 0)
	}
	return append(out, sig...)
}

// wptOptions controls the synthetic waypoint payloads the tests build.
type wptOptions struct {
	shortname  string
	class      int32
	latDeg     float64
	lonDeg     float64
	altitude   *float64
	notes      string
	proximity  *float64
	icon       int32
	city       string
	state      string
	facility   string
	legacyFlag bool // versions 1-2 only
	url        string
	address    string   // version 3 only
	desc       string   // version 3 only
	urls       []string // version 3 only
	category   int16
	temp       *float64
	creation   *int32
	truncateAt int // if > 0, cut the payload to this many bytes
}

func optFlag(out []byte, present bool) []byte {
	if present {
		return append(out, 1)
	}
	return append(out, 0)
}

// wptPayload builds a waypoint record payload for the given version.
func wptPayload(version int, o wptOptions) []byte {
	out := []byte{'W'}
	out = append(out, cstr(o.shortname)...)
	out = append(out, le32(o.class)...)
	out = append(out, cstr("")...)            // unused string
	out = append(out, make([]byte, 22)...)    // padding
	out = append(out, le32(semicircles(o.latDeg))...)
	out = append(out, le32(semicircles(o.lonDeg))...)

	out = optFlag(out, o.altitude != nil)
	if o.altitude != nil {
		out = append(out, lefloat(*o.altitude)...)
	}
	out = append(out, cstr(o.notes)...)
	out = optFlag(out, o.proximity != nil)
	if o.proximity != nil {
		out = append(out, lefloat(*o.proximity)...)
	}
	out = append(out, le32(0)...) // display mode
	out = append(out, le32(0)...) // color
	out = append(out, le32(o.icon)...)
	out = append(out, cstr(o.city)...)
	out = append(out, cstr(o.state)...)
	out = append(out, cstr(o.facility)...)
	out = append(out, 0)

	if version <= 2 {
		out = append(out, 0, 0)
		out = optFlag(out, o.legacyFlag)
		if o.legacyFlag {
			out = append(out, 0, 0)
		} else {
			out = append(out, 0, 0, 0)
		}
		out = append(out, cstr("")...) // unused string
		out = append(out, cstr(o.url)...)
	} else {
		out = append(out, cstr(o.address)...)
		out = append(out, make([]byte, 5)...)
		out = append(out, cstr(o.desc)...)
		out = append(out, le32(int32(len(o.urls)))...)
		for _, u := range o.urls {
			out = append(out, cstr(u)...)
		}
	}

	out = append(out, le16(o.category)...)
	out = optFlag(out, o.temp != nil)
	if o.temp != nil {
		out = append(out, lefloat(*o.temp)...)
	}
	if version <= 2 && o.legacyFlag {
		out = append(out, 0)
	}
	out = optFlag(out, o.creation != nil)
	if o.creation != nil {
		out = append(out, le32(*o.creation)...)
	}

	if o.truncateAt > 0 && o.truncateAt < len(out) {
		out = out[:o.truncateAt]
	}
	return out
}

type trkPoint struct {
	latDeg   float64
	lonDeg   float64
	altitude *float64
	creation *int32
	depth    *float64
	temp     *float64
}

// trkPayload builds a track record payload declaring count points but
// encoding only the ones given.
func trkPayload(name string, colorIdx, count int32, points []trkPoint) []byte {
	out := []byte{'T'}
	out = append(out, cstr(name)...)
	out = append(out, 0) // unused
	out = append(out, le32(colorIdx)...)
	out = append(out, le32(count)...)

	for _, p := range points {
		out = append(out, le32(semicircles(p.latDeg))...)
		out = append(out, le32(semicircles(p.lonDeg))...)
		out = optFlag(out, p.altitude != nil)
		if p.altitude != nil {
			out = append(out, lefloat(*p.altitude)...)
		}
		out = optFlag(out, p.creation != nil)
		if p.creation != nil {
			out = append(out, le32(*p.creation)...)
		}
		out = optFlag(out, p.depth != nil)
		if p.depth != nil {
			out = append(out, lefloat(*p.depth)...)
		}
		out = optFlag(out, p.temp != nil)
		if p.temp != nil {
			out = append(out, lefloat(*p.temp)...)
		}
	}
	return out
}

func f64(v float64) *float64 { return &v }
func i32(v int32) *int32     { return &v }

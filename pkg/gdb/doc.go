// Package gdb decodes Garmin MapSource/BaseCamp GDB binary archives
// into waypoint and track collections.
//
// A GDB file starts with the 6-byte magic "MsRcf\x00", followed by
// two header records (format version and creator) and a signature
// field, then a stream of length-prefixed records. Each record is a
// 4-byte little-endian signed length L followed by L+1 payload bytes;
// the first payload byte classifies the record:
//
//	'W'  waypoint
//	'T'  track
//	'V'  terminator: ends the stream
//
// Other tags (route records among them) are skipped. The waypoint
// field grammar depends on the format version (1-3) declared in the
// header; versions 1-2 and version 3 are decoded on separate paths.
//
// # Usage
//
//	f, err := os.Open("trip.gdb")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	r := gdb.NewReader(f)
//	waypoints, err := r.Waypoints()
//	if err != nil {
//	    return err
//	}
//
// The first accessor call consumes the source completely; later calls
// return the memoized collections. Decoding GDB files is the only
// concern of this package: it never writes them.
package gdb

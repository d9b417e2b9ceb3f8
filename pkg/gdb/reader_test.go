package gdb

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// stream builds a complete GDB byte stream: header plus the given
// records.
func stream(versionByte byte, records ...[]byte) []byte {
	out := headerBytes(versionByte, "MapSource SQA", "MapSource")
	for _, r := range records {
		out = append(out, rec(r)...)
	}
	return out
}

func terminator() []byte {
	return []byte{'V'}
}

func TestReader_FullStream(t *testing.T) {
	buf := stream('k',
		wptPayload(1, wptOptions{shortname: "ALPHA", latDeg: 10, lonDeg: 20}),
		trkPayload("Loop", 0, 1, []trkPoint{{latDeg: 10, lonDeg: 20}}),
		wptPayload(1, wptOptions{shortname: "BRAVO", latDeg: 11, lonDeg: 21}),
		terminator(),
	)

	r := NewReader(bytes.NewReader(buf))

	h, err := r.Header()
	if err != nil {
		t.Fatalf("Header failed: %v", err)
	}
	if h.Version != 1 {
		t.Errorf("Version = %d, want 1", h.Version)
	}

	waypoints, err := r.Waypoints()
	if err != nil {
		t.Fatalf("Waypoints failed: %v", err)
	}
	if len(waypoints) != 2 {
		t.Fatalf("len(waypoints) = %d, want 2", len(waypoints))
	}
	if waypoints[0].Shortname != "ALPHA" || waypoints[1].Shortname != "BRAVO" {
		t.Errorf("waypoints out of stream order: %q, %q", waypoints[0].Shortname, waypoints[1].Shortname)
	}

	tracks, err := r.Tracks()
	if err != nil {
		t.Fatalf("Tracks failed: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Name != "Loop" {
		t.Errorf("tracks = %v, want single track Loop", tracks)
	}
}

func TestReader_TerminatorStopsStream(t *testing.T) {
	// Records after the terminator must be ignored, even well-formed
	// ones; trailing garbage must not fail the parse either.
	buf := stream('k',
		wptPayload(1, wptOptions{shortname: "BEFORE"}),
		terminator(),
		wptPayload(1, wptOptions{shortname: "AFTER"}),
	)
	buf = append(buf, 0xDE, 0xAD)

	r := NewReader(bytes.NewReader(buf))

	waypoints, err := r.Waypoints()
	if err != nil {
		t.Fatalf("Waypoints failed: %v", err)
	}
	if len(waypoints) != 1 || waypoints[0].Shortname != "BEFORE" {
		t.Errorf("waypoints = %v, want only BEFORE", waypoints)
	}
}

func TestReader_IgnoresUnknownRecords(t *testing.T) {
	// A route record ('R') and an arbitrary unknown tag are skipped.
	buf := stream('k',
		[]byte{'R', 1, 2, 3, 4},
		wptPayload(1, wptOptions{shortname: "KEPT"}),
		[]byte{'Z', 0xFF},
		terminator(),
	)

	r := NewReader(bytes.NewReader(buf))

	waypoints, err := r.Waypoints()
	if err != nil {
		t.Fatalf("Waypoints failed: %v", err)
	}
	if len(waypoints) != 1 || waypoints[0].Shortname != "KEPT" {
		t.Errorf("waypoints = %v, want only KEPT", waypoints)
	}
}

func TestReader_MissingTerminator(t *testing.T) {
	buf := stream('k', wptPayload(1, wptOptions{shortname: "ONLY"}))

	r := NewReader(bytes.NewReader(buf))

	_, err := r.Waypoints()

	var truncated *TruncatedDataError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedDataError, got %v", err)
	}
}

func TestReader_CorruptRecordAbortsStream(t *testing.T) {
	buf := stream('k',
		wptPayload(1, wptOptions{shortname: "OK"}),
		wptPayload(1, wptOptions{shortname: "BROKEN", truncateAt: 10}),
		terminator(),
	)

	r := NewReader(bytes.NewReader(buf))

	_, err := r.Waypoints()
	if err == nil {
		t.Fatal("expected decode error for corrupt record")
	}

	// The error is memoized: later accessors return it too.
	if _, err2 := r.Tracks(); err2 == nil {
		t.Error("Tracks succeeded after failed parse")
	}
}

// countingReader counts Read calls so tests can prove the source is
// not consulted again after the first full pass.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

func TestReader_MemoizesSinglePass(t *testing.T) {
	buf := stream('k',
		wptPayload(1, wptOptions{shortname: "ONCE"}),
		terminator(),
	)

	src := &countingReader{r: bytes.NewReader(buf)}
	r := NewReader(src)

	first, err := r.Waypoints()
	if err != nil {
		t.Fatalf("Waypoints failed: %v", err)
	}
	readsAfterFirst := src.reads
	if readsAfterFirst == 0 {
		t.Fatal("source never read")
	}

	second, err := r.Waypoints()
	if err != nil {
		t.Fatalf("second Waypoints failed: %v", err)
	}
	if _, err := r.Tracks(); err != nil {
		t.Fatalf("Tracks failed: %v", err)
	}

	if src.reads != readsAfterFirst {
		t.Errorf("source re-read: %d reads after first pass, %d now", readsAfterFirst, src.reads)
	}
	if len(first) != len(second) || &first[0] != &second[0] {
		t.Error("accessor returned a different collection on the second call")
	}
}

func TestReader_NoRecordsBeforeHeaderAccess(t *testing.T) {
	src := &countingReader{r: bytes.NewReader(nil)}
	NewReader(src)

	if src.reads != 0 {
		t.Errorf("NewReader read the source %d times", src.reads)
	}
}

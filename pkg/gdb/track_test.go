package gdb

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDecodeTrack_Basic(t *testing.T) {
	points := []trkPoint{
		{latDeg: 47.0, lonDeg: -122.0},
		{latDeg: 47.1, lonDeg: -122.1, altitude: f64(210.5)},
		{latDeg: 47.2, lonDeg: -122.2, creation: i32(1203424800), depth: f64(3.5), temp: f64(11.0)},
	}
	payload := trkPayload("Morning Ride", 9, 3, points)

	trk, err := decodeTrack(payload)
	if err != nil {
		t.Fatalf("decodeTrack failed: %v", err)
	}

	if trk.Name != "Morning Ride" {
		t.Errorf("Name = %q", trk.Name)
	}
	if trk.ColorIndex != 9 || trk.Color != "Red" {
		t.Errorf("color = %d/%q, want 9/Red", trk.ColorIndex, trk.Color)
	}
	if len(trk.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(trk.Points))
	}

	if math.Abs(trk.Points[0].Lat-47.0) > 1e-6 {
		t.Errorf("Points[0].Lat = %v, want 47.0", trk.Points[0].Lat)
	}
	if trk.Points[0].Altitude != nil {
		t.Error("Points[0].Altitude set without flag")
	}
	if trk.Points[1].Altitude == nil || *trk.Points[1].Altitude != 210.5 {
		t.Errorf("Points[1].Altitude = %v, want 210.5", trk.Points[1].Altitude)
	}

	last := trk.Points[2]
	wantTime := time.Unix(1203424800, 0).UTC()
	if last.CreationTime == nil || !last.CreationTime.Equal(wantTime) {
		t.Errorf("Points[2].CreationTime = %v, want %v", last.CreationTime, wantTime)
	}
	if last.Depth == nil || *last.Depth != 3.5 {
		t.Errorf("Points[2].Depth = %v, want 3.5", last.Depth)
	}
	if last.Temperature == nil || *last.Temperature != 11.0 {
		t.Errorf("Points[2].Temperature = %v, want 11.0", last.Temperature)
	}
}

func TestDecodeTrack_AltitudeSentinel(t *testing.T) {
	payload := trkPayload("Dive", 0, 1, []trkPoint{
		{latDeg: 20.0, lonDeg: -87.0, altitude: f64(1.0e25)},
	})

	trk, err := decodeTrack(payload)
	if err != nil {
		t.Fatalf("decodeTrack failed: %v", err)
	}
	if trk.Points[0].Altitude != nil {
		t.Errorf("Altitude = %v, want sentinel discarded", *trk.Points[0].Altitude)
	}
}

func TestDecodeTrack_CountHonoredExactly(t *testing.T) {
	// Three points declared, only two encoded: the missing third must
	// surface as a truncation error, not as a short track.
	payload := trkPayload("Short", 0, 3, []trkPoint{
		{latDeg: 47.0, lonDeg: -122.0},
		{latDeg: 47.1, lonDeg: -122.1},
	})

	_, err := decodeTrack(payload)

	var truncated *TruncatedDataError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedDataError, got %v", err)
	}
}

func TestDecodeTrack_EmptyTrack(t *testing.T) {
	payload := trkPayload("Empty", 2, 0, nil)

	trk, err := decodeTrack(payload)
	if err != nil {
		t.Fatalf("decodeTrack failed: %v", err)
	}
	if len(trk.Points) != 0 {
		t.Errorf("len(Points) = %d, want 0", len(trk.Points))
	}
	if trk.Color != "DarkGreen" {
		t.Errorf("Color = %q, want DarkGreen", trk.Color)
	}
}

func TestColorName(t *testing.T) {
	testCases := []struct {
		idx  int32
		want string
	}{
		{idx: 0, want: "Black"},
		{idx: 12, want: "Blue"},
		{idx: 16, want: "Transparent"},
		{idx: -1, want: ""},
		{idx: 17, want: ""},
		{idx: 1000, want: ""},
	}

	for _, tc := range testCases {
		if got := ColorName(tc.idx); got != tc.want {
			t.Errorf("ColorName(%d) = %q, want %q", tc.idx, got, tc.want)
		}
	}
}

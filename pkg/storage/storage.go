package storage

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/waypt/gdbkit/pkg/gdb"
)

// Key prefixes separate waypoint and track records in the store.
var (
	waypointPrefix = []byte("wpt/")
	trackPrefix    = []byte("trk/")
)

// ImportStore persists decoded GDB records in a Pebble database.
// Records are stored as JSON values keyed by a type prefix plus a
// ksuid, so insertion order is roughly preserved on iteration.
type ImportStore struct {
	db *pebble.DB
}

// Open opens (or creates) an import store at path.
func Open(path string) (*ImportStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &ImportStore{db: db}, nil
}

// Close closes the underlying database.
func (s *ImportStore) Close() error {
	return s.db.Close()
}

// PutWaypoint stores a waypoint and returns its assigned ID.
func (s *ImportStore) PutWaypoint(w gdb.Waypoint) (ksuid.KSUID, error) {
	id := ksuid.New()
	data, err := json.Marshal(w)
	if err != nil {
		return id, fmt.Errorf("encoding waypoint %q: %w", w.Shortname, err)
	}
	if err := s.db.Set(keyFor(waypointPrefix, id), data, pebble.NoSync); err != nil {
		return id, err
	}
	return id, nil
}

// PutTrack stores a track and returns its assigned ID.
func (s *ImportStore) PutTrack(t gdb.Track) (ksuid.KSUID, error) {
	id := ksuid.New()
	data, err := json.Marshal(t)
	if err != nil {
		return id, fmt.Errorf("encoding track %q: %w", t.Name, err)
	}
	if err := s.db.Set(keyFor(trackPrefix, id), data, pebble.NoSync); err != nil {
		return id, err
	}
	return id, nil
}

// Waypoint fetches a single waypoint by ID.
func (s *ImportStore) Waypoint(id ksuid.KSUID) (*gdb.Waypoint, error) {
	data, closer, err := s.db.Get(keyFor(waypointPrefix, id))
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var w gdb.Waypoint
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decoding waypoint %s: %w", id, err)
	}
	return &w, nil
}

// Track fetches a single track by ID.
func (s *ImportStore) Track(id ksuid.KSUID) (*gdb.Track, error) {
	data, closer, err := s.db.Get(keyFor(trackPrefix, id))
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var t gdb.Track
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding track %s: %w", id, err)
	}
	return &t, nil
}

// Waypoints returns all stored waypoints.
func (s *ImportStore) Waypoints() ([]gdb.Waypoint, error) {
	var out []gdb.Waypoint
	err := s.scan(waypointPrefix, func(value []byte) error {
		var w gdb.Waypoint
		if err := json.Unmarshal(value, &w); err != nil {
			return err
		}
		out = append(out, w)
		return nil
	})
	return out, err
}

// Tracks returns all stored tracks.
func (s *ImportStore) Tracks() ([]gdb.Track, error) {
	var out []gdb.Track
	err := s.scan(trackPrefix, func(value []byte) error {
		var t gdb.Track
		if err := json.Unmarshal(value, &t); err != nil {
			return err
		}
		out = append(out, t)
		return nil
	})
	return out, err
}

// ImportCounts summarizes one import run.
type ImportCounts struct {
	Waypoints int
	Tracks    int
}

// Import decodes everything the reader holds and stores it.
func (s *ImportStore) Import(r *gdb.Reader) (ImportCounts, error) {
	counts := ImportCounts{}

	waypoints, err := r.Waypoints()
	if err != nil {
		return counts, fmt.Errorf("decoding waypoints: %w", err)
	}
	tracks, err := r.Tracks()
	if err != nil {
		return counts, fmt.Errorf("decoding tracks: %w", err)
	}

	for _, w := range waypoints {
		if _, err := s.PutWaypoint(w); err != nil {
			return counts, err
		}
		counts.Waypoints++
	}
	for _, t := range tracks {
		if _, err := s.PutTrack(t); err != nil {
			return counts, err
		}
		counts.Tracks++
	}

	return counts, nil
}

// scan iterates every value under the given key prefix.
func (s *ImportStore) scan(prefix []byte, fn func(value []byte) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		if err := fn(iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

func keyFor(prefix []byte, id ksuid.KSUID) []byte {
	return append(append([]byte(nil), prefix...), id.Bytes()...)
}

// prefixUpperBound returns the smallest key greater than every key
// with the given prefix.
func prefixUpperBound(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}

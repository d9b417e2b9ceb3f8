package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/waypt/gdbkit/pkg/query"
)

// Server holds the API server state
type Server struct {
	src     Source
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server over a decoded GDB source
func NewServer(src Source, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		src:     src,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleInfo returns the decoded file header and collection counts.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	header, err := s.src.Header()
	if err != nil {
		s.recordDecode("header", false)
		sendError(w, fmt.Sprintf("Failed to decode header: %v", err), http.StatusUnprocessableEntity)
		return
	}
	waypoints, err := s.src.Waypoints()
	if err != nil {
		s.recordDecode("waypoints", false)
		sendError(w, fmt.Sprintf("Failed to decode waypoints: %v", err), http.StatusUnprocessableEntity)
		return
	}
	tracks, err := s.src.Tracks()
	if err != nil {
		s.recordDecode("tracks", false)
		sendError(w, fmt.Sprintf("Failed to decode tracks: %v", err), http.StatusUnprocessableEntity)
		return
	}
	s.recordDecode("header", true)

	sendSuccess(w, InfoResponse{
		Version:   header.Version,
		CreatedBy: header.CreatedBy.String(),
		SignedBy:  header.SignedBy,
		Waypoints: len(waypoints),
		Tracks:    len(tracks),
	})
}

// handleWaypoints returns decoded waypoints, optionally filtered by
// bounding box and shortname query parameters.
func (s *Server) handleWaypoints(w http.ResponseWriter, r *http.Request) {
	filter, err := waypointFilterFromQuery(r.URL.Query())
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	waypoints, err := s.src.Waypoints()
	if err != nil {
		s.recordDecode("waypoints", false)
		sendError(w, fmt.Sprintf("Failed to decode waypoints: %v", err), http.StatusUnprocessableEntity)
		return
	}
	s.recordDecode("waypoints", true)

	sendSuccess(w, filter.Apply(waypoints))
}

// handleTracks returns decoded tracks, optionally filtered by name
// and minimum point count.
func (s *Server) handleTracks(w http.ResponseWriter, r *http.Request) {
	filter, err := trackFilterFromQuery(r.URL.Query())
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tracks, err := s.src.Tracks()
	if err != nil {
		s.recordDecode("tracks", false)
		sendError(w, fmt.Sprintf("Failed to decode tracks: %v", err), http.StatusUnprocessableEntity)
		return
	}
	s.recordDecode("tracks", true)

	sendSuccess(w, filter.Apply(tracks))
}

func (s *Server) recordDecode(collection string, success bool) {
	if s.metrics != nil {
		s.metrics.RecordDecode(collection, success)
	}
}

// waypointFilterFromQuery builds a validated waypoint filter from URL
// query parameters.
func waypointFilterFromQuery(values url.Values) (*query.WaypointFilter, error) {
	filter := &query.WaypointFilter{
		Shortname: values.Get("shortname"),
	}

	bounds := []struct {
		param string
		dest  **float64
	}{
		{param: "min_lat", dest: &filter.MinLat},
		{param: "max_lat", dest: &filter.MaxLat},
		{param: "min_lon", dest: &filter.MinLon},
		{param: "max_lon", dest: &filter.MaxLon},
	}
	for _, b := range bounds {
		raw := values.Get(b.param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q", b.param, raw)
		}
		*b.dest = &v
	}

	if raw := values.Get("require_altitude"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid require_altitude: %q", raw)
		}
		filter.RequireAltitude = v
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return filter, nil
}

// trackFilterFromQuery builds a validated track filter from URL query
// parameters.
func trackFilterFromQuery(values url.Values) (*query.TrackFilter, error) {
	filter := &query.TrackFilter{
		Name: values.Get("name"),
	}

	if raw := values.Get("min_points"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid min_points: %q", raw)
		}
		filter.MinPoints = v
	}

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return filter, nil
}

package api

import "github.com/waypt/gdbkit/pkg/gdb"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// InfoResponse is the decoded file header plus collection counts.
type InfoResponse struct {
	Version   int    `json:"version"`
	CreatedBy string `json:"created_by"`
	SignedBy  string `json:"signed_by"`
	Waypoints int    `json:"waypoints"`
	Tracks    int    `json:"tracks"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string // empty disables authentication
}

// Source provides decoded GDB data to the handlers. *gdb.Reader
// satisfies it; so does any cached or stored collection.
type Source interface {
	Header() (*gdb.Header, error)
	Waypoints() ([]gdb.Waypoint, error)
	Tracks() ([]gdb.Track, error)
}

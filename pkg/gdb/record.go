package gdb

import (
	"fmt"

	"github.com/waypt/gdbkit/pkg/codec"
)

// Record tags. A record's first payload byte classifies it; tags not
// listed here belong to record kinds this decoder does not interpret
// (routes among them) and are skipped.
const (
	tagWaypoint   = 'W'
	tagTrack      = 'T'
	tagTerminator = 'V'
)

// record is one length-prefixed record from the stream: the tag byte
// plus the full payload (tag included).
type record struct {
	tag     byte
	payload []byte
}

// readRecord reads the next length-prefixed record: a 4-byte signed
// length L followed by L+1 payload bytes. The stored length is one
// less than the bytes actually present.
func readRecord(c *codec.Cursor) (record, error) {
	length, err := c.Int32()
	if err != nil {
		return record{}, err
	}
	if length < 0 {
		return record{}, &InvalidFormatError{Reason: fmt.Sprintf("negative record length %d", length)}
	}

	payload, err := c.Bytes(int(length) + 1)
	if err != nil {
		return record{}, err
	}

	return record{tag: payload[0], payload: payload}, nil
}

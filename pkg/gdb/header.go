package gdb

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/waypt/gdbkit/pkg/codec"
)

// magic is the 6-byte file prefix: the ASCII literal plus its
// terminating NUL.
const magic = "MsRcf\x00"

// Supported format version range.
const (
	minVersion = 1
	maxVersion = 3
)

// parseHeader validates the magic bytes and the top two header
// records and consumes the signature field, leaving the cursor at the
// first record of the record stream.
func parseHeader(c *codec.Cursor) (*Header, error) {
	prefix, err := c.Bytes(len(magic))
	if err != nil {
		return nil, err
	}
	if string(prefix) != magic {
		return nil, &InvalidFormatError{Reason: fmt.Sprintf("bad magic bytes %q", prefix)}
	}

	h := &Header{}

	// First header record: 'D' tag, then the version byte.
	rec, err := readRecord(c)
	if err != nil {
		return nil, err
	}
	if rec.tag != 'D' {
		return nil, &InvalidFormatError{Reason: fmt.Sprintf("expected 'D' header record, got %q", rec.tag)}
	}
	if len(rec.payload) < 2 {
		return nil, &codec.TruncatedDataError{Offset: c.Offset(), Need: 2, Have: len(rec.payload)}
	}
	h.Version = int(rec.payload[1]) - 'k' + 1
	if h.Version < minVersion || h.Version > maxVersion {
		return nil, &UnsupportedVersionError{Version: h.Version, Min: minVersion, Max: maxVersion}
	}

	// Second header record: the creator string.
	rec, err = readRecord(c)
	if err != nil {
		return nil, err
	}
	creator, err := codec.NewCursor(rec.payload).String()
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(creator, "SQA"):
		h.CreatedBy = CreatedByMapSource
	case strings.HasSuffix(creator, "neaderhi"):
		h.CreatedBy = CreatedByMapSourceBeta
	}

	// Signature field: 10 raw bytes, then scan-extend one byte at a
	// time until the last byte read is the NUL terminator. The field
	// has no declared length.
	sig, err := c.Bytes(10)
	if err != nil {
		return nil, err
	}
	buf := append([]byte(nil), sig...)
	for buf[len(buf)-1] != 0 {
		b, err := c.Byte()
		if err != nil {
			return nil, err
		}
		buf = append(buf, b)
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	h.SignedBy = string(buf)
	if !strings.Contains(h.SignedBy, "MapSource") && !strings.Contains(h.SignedBy, "BaseCamp") {
		return nil, &InvalidFormatError{Reason: fmt.Sprintf("unrecognized signature %q", h.SignedBy)}
	}

	return h, nil
}

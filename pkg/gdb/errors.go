package gdb

import (
	"fmt"

	"github.com/waypt/gdbkit/pkg/codec"
)

// TruncatedDataError is returned when the stream ends before an
// expected field or record completes. It is produced by the codec
// layer and surfaced unchanged.
type TruncatedDataError = codec.TruncatedDataError

// InvalidFormatError indicates that the input is not a GDB stream:
// bad magic bytes, an unexpected header record tag, or an
// unrecognized signature string.
type InvalidFormatError struct {
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return "gdb: invalid format: " + e.Reason
}

// UnsupportedVersionError indicates a GDB format version outside the
// range this decoder understands.
type UnsupportedVersionError struct {
	Version int
	Min     int
	Max     int
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("gdb: unsupported format version %d (supported: %d-%d)", e.Version, e.Min, e.Max)
}

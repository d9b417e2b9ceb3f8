package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// TruncatedDataError indicates a read past the end of the buffer: the
// stream ended before an expected field or record was complete.
type TruncatedDataError struct {
	Offset int // cursor position when the read was attempted
	Need   int // bytes the read required
	Have   int // bytes remaining in the buffer
}

func (e *TruncatedDataError) Error() string {
	return fmt.Sprintf("truncated data at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// Cursor provides sequential decoding of primitive values from an
// in-memory byte buffer. All multi-byte integers are little-endian
// two's complement. A Cursor only moves forward; a failed read does
// not advance the offset.
type Cursor struct {
	buf []byte
	off int
}

// NewCursor creates a cursor positioned at the start of buf. The
// cursor borrows buf; callers must not mutate it while decoding.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Offset returns the current position in the buffer.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.off
}

// require checks that n bytes are available at the current offset.
func (c *Cursor) require(n int) error {
	if rem := len(c.buf) - c.off; rem < n {
		return &TruncatedDataError{Offset: c.off, Need: n, Have: rem}
	}
	return nil
}

// Int32 consumes 4 bytes as a little-endian signed 32-bit integer.
func (c *Cursor) Int32() (int32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := int32(binary.LittleEndian.Uint32(c.buf[c.off:]))
	c.off += 4
	return v, nil
}

// Int16 consumes 2 bytes as a little-endian signed 16-bit integer.
func (c *Cursor) Int16() (int16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := int16(binary.LittleEndian.Uint16(c.buf[c.off:]))
	c.off += 2
	return v, nil
}

// Double consumes 8 bytes as a little-endian IEEE-754 double.
func (c *Cursor) Double() (float64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(c.buf[c.off:]))
	c.off += 8
	return v, nil
}

// Byte consumes a single byte.
func (c *Cursor) Byte() (byte, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.buf[c.off]
	c.off++
	return v, nil
}

// Bool consumes a single byte; the value 1 means true, anything else
// means false.
func (c *Cursor) Bool() (bool, error) {
	v, err := c.Byte()
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// String consumes bytes up to and including the first 0x00 terminator
// and returns the bytes before it as a string.
func (c *Cursor) String() (string, error) {
	for i := c.off; i < len(c.buf); i++ {
		if c.buf[i] == 0 {
			s := string(c.buf[c.off:i])
			c.off = i + 1
			return s, nil
		}
	}
	return "", &TruncatedDataError{Offset: c.off, Need: 1, Have: 0}
}

// Bytes returns exactly n raw bytes. The returned slice aliases the
// underlying buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip advances the cursor by n bytes without interpreting them.
func (c *Cursor) Skip(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.off += n
	return nil
}

// Package codec provides primitive binary decoding for gdbkit.
//
// The codec package implements a forward-only cursor over an in-memory
// byte buffer. This is the foundation for gdbkit's GDB record decoders:
// every field in a GDB file is read through one of the cursor's
// fixed-width or terminated-string primitives.
//
// # Wire Conventions
//
// All multi-byte integers are little-endian two's complement:
//   - Int32: 4 bytes, signed
//   - Int16: 2 bytes, signed
//   - Double: 8 bytes, IEEE-754 double precision
//   - Byte / Bool: 1 byte; for Bool the value 1 means true, anything
//     else means false
//   - String: bytes up to (and consuming) the first 0x00 terminator
//   - Bytes(n): exactly n raw bytes
//   - Skip(n): advances past n uninterpreted bytes
//
// # Error Handling
//
// Any read past the end of the buffer fails with *TruncatedDataError
// carrying the offset, the bytes required, and the bytes available.
// A failed read never advances the cursor.
//
// # Usage
//
//	c := codec.NewCursor(payload)
//
//	name, err := c.String()
//	if err != nil {
//	    return err
//	}
//
//	class, err := c.Int32()
//	if err != nil {
//	    return err
//	}
package codec

package gdb

// semicircleUnit is 2^31: the full signed 32-bit range maps to ±180
// degrees.
const semicircleUnit = 2147483648.0

// Degrees converts a signed 32-bit semicircle value to degrees.
func Degrees(v int32) float64 {
	return float64(v) / semicircleUnit * 180.0
}

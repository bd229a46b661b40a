package domain

import (
	"encoding/binary"
	"math"
)

// EncodeVector serializes an embedding to the textual transport form the
// backend consumes: little-endian float32 bytes, suitable for an FT.SEARCH
// BLOB parameter.
func EncodeVector(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

// DecodeVector reverses EncodeVector. Returns nil for input that is not a
// whole number of float32 values.
func DecodeVector(s string) []float32 {
	b := []byte(s)
	if len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

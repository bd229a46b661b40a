package domain

import "testing"

func TestEncodeDecodeVector(t *testing.T) {
	v := []float32{0.1, -2.5, 0, 1000.25}

	encoded := EncodeVector(v)
	if len(encoded) != len(v)*4 {
		t.Fatalf("expected %d bytes, got %d", len(v)*4, len(encoded))
	}

	decoded := DecodeVector(encoded)
	if len(decoded) != len(v) {
		t.Fatalf("expected %d values, got %d", len(v), len(decoded))
	}
	for i := range v {
		if decoded[i] != v[i] {
			t.Errorf("value %d: got %v, want %v", i, decoded[i], v[i])
		}
	}
}

func TestDecodeVector_BadLength(t *testing.T) {
	if got := DecodeVector("abc"); got != nil {
		t.Fatalf("expected nil for truncated input, got %v", got)
	}
}

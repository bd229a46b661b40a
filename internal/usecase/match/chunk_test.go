package match

import "testing"

func TestChunkTexts(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		size      int
		wantLens  []int
	}{
		{"empty", 0, 100, nil},
		{"single partial chunk", 3, 100, []int{3}},
		{"exact chunk", 100, 100, []int{100}},
		{"one over", 101, 100, []int{100, 1}},
		{"multiple", 250, 100, []int{100, 100, 50}},
		{"size one", 3, 1, []int{1, 1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			texts := make([]string, tc.n)
			for i := range texts {
				texts[i] = string(rune('a' + i%26))
			}

			chunks := chunkTexts(texts, tc.size)

			if len(chunks) != len(tc.wantLens) {
				t.Fatalf("expected %d chunks, got %d", len(tc.wantLens), len(chunks))
			}
			var flat []string
			for i, c := range chunks {
				if len(c) != tc.wantLens[i] {
					t.Errorf("chunk %d: expected len %d, got %d", i, tc.wantLens[i], len(c))
				}
				if len(c) > tc.size {
					t.Errorf("chunk %d exceeds max size %d", i, tc.size)
				}
				flat = append(flat, c...)
			}

			if len(flat) != len(texts) {
				t.Fatalf("concatenated chunks have len %d, want %d", len(flat), len(texts))
			}
			for i := range texts {
				if flat[i] != texts[i] {
					t.Fatalf("concatenation diverges at %d: %q != %q", i, flat[i], texts[i])
				}
			}
		})
	}
}

package domain

import "testing"

func intPtr(v int) *int { return &v }

func TestResolve_Defaults(t *testing.T) {
	queries := []Query{
		{Text: "fire door", UniclassType: "pr"},
		{Text: "steel beam", UniclassType: "Ss", Depth: intPtr(4)},
		{RequestID: intPtr(42), Text: "cable tray", UniclassType: "EF"},
	}

	resolved := Resolve(queries)

	if len(resolved) != 3 {
		t.Fatalf("expected 3 resolved queries, got %d", len(resolved))
	}

	if resolved[0].RequestID != 0 {
		t.Errorf("expected positional id 0, got %d", resolved[0].RequestID)
	}
	if resolved[0].Depth != DefaultDepth {
		t.Errorf("expected default depth %d, got %d", DefaultDepth, resolved[0].Depth)
	}
	if resolved[0].UniclassType != "PR" {
		t.Errorf("expected upper-cased type PR, got %q", resolved[0].UniclassType)
	}

	if resolved[1].RequestID != 1 {
		t.Errorf("expected positional id 1, got %d", resolved[1].RequestID)
	}
	if resolved[1].Depth != 4 {
		t.Errorf("expected explicit depth 4, got %d", resolved[1].Depth)
	}
	if resolved[1].UniclassType != "SS" {
		t.Errorf("expected SS, got %q", resolved[1].UniclassType)
	}

	if resolved[2].RequestID != 42 {
		t.Errorf("expected explicit id 42, got %d", resolved[2].RequestID)
	}
}

func TestResolve_Empty(t *testing.T) {
	if got := Resolve(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

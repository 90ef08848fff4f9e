package tui

import (
	"testing"
)

func TestRenderSparkline_Empty(t *testing.T) {
	got := RenderSparkline(nil)
	if got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestRenderSparkline_AllZero(t *testing.T) {
	got := RenderSparkline([]float64{0, 0, 0})
	runes := []rune(got)
	for i, r := range runes {
		if r != '▁' {
			t.Errorf("index %d: expected '▁', got %c", i, r)
		}
	}
}

func TestRenderSparkline_AllMax(t *testing.T) {
	got := RenderSparkline([]float64{100, 100, 100})
	runes := []rune(got)
	for i, r := range runes {
		if r != '█' {
			t.Errorf("index %d: expected '█', got %c", i, r)
		}
	}
}

func TestRenderSparkline_Gradient(t *testing.T) {
	values := []float64{0, 14.3, 28.6, 42.9, 57.1, 71.4, 85.7, 100}
	got := RenderSparkline(values)
	runes := []rune(got)
	if len(runes) != 8 {
		t.Fatalf("expected 8 chars, got %d", len(runes))
	}
	// Should be strictly ascending
	for i := 1; i < len(runes); i++ {
		if runes[i] < runes[i-1] {
			t.Errorf("expected ascending at index %d: %c < %c", i, runes[i], runes[i-1])
		}
	}
}

func TestRenderSparkline_Clamping(t *testing.T) {
	got := RenderSparkline([]float64{-10, 150})
	runes := []rune(got)
	if runes[0] != '▁' {
		t.Errorf("negative not clamped to min: got %c", runes[0])
	}
	if runes[1] != '█' {
		t.Errorf("over-100 not clamped to max: got %c", runes[1])
	}
}

func TestRenderSparkline_MidValue(t *testing.T) {
	got := RenderSparkline([]float64{50})
	runes := []rune(got)
	// 50/100 * 7 = 3.5 -> index 3 -> '▄'
	if runes[0] != '▄' {
		t.Errorf("expected '▄' for 50%%, got %c", runes[0])
	}
}

func TestGrowthValues(t *testing.T) {
	terms := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	got := GrowthValues(terms, 0)
	if len(got) != len(terms) {
		t.Fatalf("len = %d, want %d", len(got), len(terms))
	}
	if got[0] != 0 {
		t.Errorf("F(0) should map to 0, got %f", got[0])
	}
	if got[len(got)-1] != 100 {
		t.Errorf("largest term should map to 100, got %f", got[len(got)-1])
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Errorf("values should be non-decreasing at %d", i)
		}
	}
}

func TestGrowthValues_KeepsTail(t *testing.T) {
	terms := []int64{0, 1, 1, 2, 3, 5, 8}
	got := GrowthValues(terms, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[2] != 100 {
		t.Errorf("last kept term should map to 100, got %f", got[2])
	}
}

func TestGrowthValues_Degenerate(t *testing.T) {
	if GrowthValues(nil, 10) != nil {
		t.Error("expected nil for no terms")
	}
	got := GrowthValues([]int64{0}, 10)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("single zero term should map to [0], got %v", got)
	}
}

package estimate

import "testing"

func TestWorkScore(t *testing.T) {
	tests := []struct {
		name         string
		pageCount    int
		sectionCount int
		want         int
	}{
		{"zero project", 0, 0, 0},
		{"pages dominate", 10, 4, 10},
		{"sections dominate", 2, 40, 10},
		{"sections round up", 3, 13, 4},
		{"exact section multiple", 1, 8, 2},
		{"standard consultation", 6, 20, 6},
		{"negative counts clamp to zero", -3, -7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorkScore(tt.pageCount, tt.sectionCount); got != tt.want {
				t.Errorf("WorkScore(%d, %d) = %d, want %d", tt.pageCount, tt.sectionCount, got, tt.want)
			}
		})
	}
}

func TestWorkScoreMonotonic(t *testing.T) {
	for pages := 0; pages <= 30; pages++ {
		for sections := 0; sections <= 60; sections++ {
			base := WorkScore(pages, sections)
			if morePages := WorkScore(pages+1, sections); morePages < base {
				t.Fatalf("WorkScore decreased from %d to %d when pages went %d -> %d (sections %d)",
					base, morePages, pages, pages+1, sections)
			}
			if moreSections := WorkScore(pages, sections+1); moreSections < base {
				t.Fatalf("WorkScore decreased from %d to %d when sections went %d -> %d (pages %d)",
					base, moreSections, sections, sections+1, pages)
			}
		}
	}
}

func TestPriceRangeBoundaries(t *testing.T) {
	tests := []struct {
		workScore int
		want      string
	}{
		{0, "100~150만원"},
		{5, "100~150만원"},
		{6, "150~200만원"},
		{8, "150~200만원"},
		{9, "200~300만원"},
		{12, "200~300만원"},
		{13, "300~400만원"},
		{15, "300~400만원"},
		{16, "400만원 이상 (협의)"},
		{100, "400만원 이상 (협의)"},
	}

	for _, tt := range tests {
		if got := PriceRange(tt.workScore); got != tt.want {
			t.Errorf("PriceRange(%d) = %q, want %q", tt.workScore, got, tt.want)
		}
	}
}

func TestEstimatedPrice(t *testing.T) {
	// 6 pages vs ceil(20/4)=5 sections worth: workscore 6.
	if got := EstimatedPrice(6, 20); got != "150~200만원" {
		t.Errorf("EstimatedPrice(6, 20) = %q, want %q", got, "150~200만원")
	}
}

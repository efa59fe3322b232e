package domain_test

import (
	"math"
	"testing"

	"airc/internal/modules/assessment/domain"
)

func TestActiveIndexResumesAfterLastAnswered(t *testing.T) {
	t.Parallel()
	catalog := domain.DefaultCatalog()

	cases := []struct {
		name     string
		answered []string
		want     int
	}{
		{name: "nothing answered starts at first", answered: nil, want: 0},
		{name: "after q1", answered: []string{"q1"}, want: 1},
		{name: "after q1..q4", answered: []string{"q1", "q2", "q3", "q4"}, want: 4},
		{name: "after q1..q8", answered: []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8"}, want: 8},
		{name: "last answered clamps to final index", answered: []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9"}, want: 8},
		{name: "order matters, not membership", answered: []string{"q5", "q2"}, want: 2},
		{name: "unknown last element resumes at first", answered: []string{"bogus"}, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := catalog.ActiveIndex(tc.answered); got != tc.want {
				t.Fatalf("ActiveIndex(%v) = %d, want %d", tc.answered, got, tc.want)
			}
		})
	}
}

func TestIsLast(t *testing.T) {
	t.Parallel()
	catalog := domain.DefaultCatalog()
	if catalog.IsLast(len(catalog) - 2) {
		t.Fatalf("second-to-last index must not be last")
	}
	if !catalog.IsLast(len(catalog) - 1) {
		t.Fatalf("final index must be last")
	}
}

func TestProgressIsAFractionOfAnswered(t *testing.T) {
	t.Parallel()
	catalog := domain.DefaultCatalog()

	if got := catalog.Progress(0); got != 0 {
		t.Fatalf("Progress(0) = %v, want 0", got)
	}
	if got := catalog.Progress(len(catalog)); got != 1 {
		t.Fatalf("Progress(all) = %v, want 1", got)
	}
	want := 3.0 / float64(len(catalog))
	if got := catalog.Progress(3); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Progress(3) = %v, want %v", got, want)
	}
	// Out-of-range counts clamp instead of leaving [0,1].
	if got := catalog.Progress(len(catalog) + 5); got != 1 {
		t.Fatalf("Progress beyond catalog = %v, want 1", got)
	}
}

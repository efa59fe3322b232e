package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	adapter "airc/internal/modules/assessment/adapter/out"
	"airc/internal/modules/assessment/domain"
)

func TestFileReportStoreSave(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "reports")
	store := adapter.NewFileReportStore(dir)

	report := domain.Report{
		SessionID:   "Sess 42",
		CompletedAt: time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC),
		Completion: domain.Completion{
			Status:         "ok",
			Message:        "Solid foundation.",
			ReadinessScore: 67,
			ROI: domain.ROIEstimate{
				AnnualHoursSaved:   120,
				EstimatedDollars:   9000,
				TeamEfficiencyGain: "12%",
			},
			SummaryMarkup: "<h2>Highlights</h2><p>Automate intake.</p>",
		},
	}

	path, err := store.Save(context.Background(), report)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, want := filepath.Base(path), "20260831-093000-sess-42.md"; got != want {
		t.Fatalf("note name = %q, want %q", got, want)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	note := string(raw)
	for _, want := range []string{
		"session_id: Sess 42",
		"readiness_score: 67",
		"readiness_band: good",
		"estimated_dollars: 9000",
		"Score: 67/100 (GOOD)",
		"<h2>Highlights</h2><p>Automate intake.</p>",
	} {
		if !strings.Contains(note, want) {
			t.Fatalf("note missing %q:\n%s", want, note)
		}
	}
}

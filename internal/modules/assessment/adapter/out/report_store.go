package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"airc/internal/modules/assessment/domain"
	assessmentout "airc/internal/modules/assessment/port/out"
	"airc/internal/platform/markdown"
	"airc/internal/platform/slug"
)

type FileReportStore struct {
	dir string
}

func NewFileReportStore(dir string) assessmentout.ReportStore {
	return &FileReportStore{dir: dir}
}

// Save writes the completion result as a markdown note with YAML
// frontmatter. The summary markup is appended verbatim: it is trusted
// rich text from the coaching service.
func (s *FileReportStore) Save(_ context.Context, report domain.Report) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", report.CompletedAt.Format("20060102-150405"), slug.Make(report.SessionID))
	path := filepath.Join(s.dir, name)

	completion := report.Completion
	meta := map[string]any{
		"session_id":           report.SessionID,
		"completed_at":         report.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
		"status":               completion.Status,
		"readiness_score":      completion.ReadinessScore,
		"readiness_band":       string(domain.BandFor(completion.ReadinessScore)),
		"annual_hours_saved":   completion.ROI.AnnualHoursSaved,
		"estimated_dollars":    completion.ROI.EstimatedDollars,
		"team_efficiency_gain": completion.ROI.TeamEfficiencyGain,
	}
	body := fmt.Sprintf(
		"# AI Readiness Report\n\n%s\n\n- Score: %d/100 (%s)\n- Hours saved per year: %d\n- Estimated annual value: $%d\n- Team efficiency gain: %s\n\n## Summary\n\n%s\n",
		completion.Message,
		completion.ReadinessScore,
		domain.BandFor(completion.ReadinessScore).Label(),
		completion.ROI.AnnualHoursSaved,
		completion.ROI.EstimatedDollars,
		completion.ROI.TeamEfficiencyGain,
		completion.SummaryMarkup,
	)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report note: %w", err)
	}
	return path, nil
}

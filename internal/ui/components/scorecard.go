package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"airc/internal/modules/assessment/domain"
	"airc/internal/ui/theme"
)

var (
	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Lavender).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(1, 2)

	scoreStyle = lipgloss.NewStyle().Bold(true)
)

// ScoreCard renders the readiness result as a bordered card: the score
// with its band label, followed by the ROI breakdown.
type ScoreCard struct {
	Score              int
	AnnualHoursSaved   int
	EstimatedDollars   int
	TeamEfficiencyGain string
}

func (c ScoreCard) Render(width int) string {
	band := domain.BandFor(c.Score)

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("AI Readiness Score") + "\n\n")
	sb.WriteString(scoreStyle.Foreground(bandColor(band)).Render(fmt.Sprintf("%d / 100  %s", c.Score, band.Label())))
	sb.WriteString("\n\n")
	sb.WriteString(theme.Muted.Render("hours saved / year:  ") + fmt.Sprintf("%d", c.AnnualHoursSaved) + "\n")
	sb.WriteString(theme.Muted.Render("estimated value:     ") + fmt.Sprintf("$%d", c.EstimatedDollars) + "\n")
	sb.WriteString(theme.Muted.Render("efficiency gain:     ") + c.TeamEfficiencyGain)

	style := cardStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(sb.String())
}

func bandColor(band domain.Band) lipgloss.Color {
	switch band {
	case domain.BandExcellent:
		return theme.Green
	case domain.BandGood:
		return theme.Sapphire
	case domain.BandModerate:
		return theme.Yellow
	default:
		return theme.Red
	}
}

// ProgressLine renders the "QUESTION i/n" header with a simple bar, used
// above the active question.
func ProgressLine(index, total int, progress float64, width int) string {
	label := theme.Hot.Render(fmt.Sprintf("QUESTION %d/%d", index+1, total))

	barWidth := width - lipgloss.Width(label) - 3
	if barWidth < 8 {
		return label
	}
	filled := int(progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := lipgloss.NewStyle().Foreground(theme.Lavender).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Surface1).Render(strings.Repeat("░", barWidth-filled))
	return label + "  " + bar
}

package complete

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"airc/internal/modules/assessment/dto"
	"airc/internal/ui/components"
	"airc/internal/ui/theme"
)

// RequestMsg is emitted when the user confirms completion.
type RequestMsg struct{ OptInEmail bool }

// ExportMsg is emitted to save the result as a markdown report.
type ExportMsg struct{}

type phase int

const (
	phaseDeciding phase = iota
	phaseScoring
	phaseDone
)

// Model handles the end of the assessment: the email opt-in decision,
// the scoring wait, and the final score card with the summary.
type Model struct {
	optIn      bool
	phase      phase
	result     dto.CompletionOutput
	summary    viewport.Model
	spinner    spinner.Model
	errText    string
	exportPath string
	copied     bool
	width      int
	height     int
}

func New() Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Padding(0, 1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	// Opt-in mirrors the form default: checked unless unchecked.
	return Model{optIn: true, summary: vp, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseScoring {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.phase {
		case phaseDeciding:
			switch msg.String() {
			case " ":
				m.optIn = !m.optIn
			case "enter":
				m.phase = phaseScoring
				m.errText = ""
				optIn := m.optIn
				return m, tea.Batch(m.spinner.Tick, func() tea.Msg { return RequestMsg{OptInEmail: optIn} })
			}
		case phaseDone:
			switch msg.String() {
			case "e":
				if m.exportPath == "" {
					return m, func() tea.Msg { return ExportMsg{} }
				}
			case "c":
				if text := plainSummary(m.result); text != "" {
					m.copied = clipboard.WriteAll(text) == nil
				}
			}
		}
	}

	if m.phase == phaseDone {
		var cmd tea.Cmd
		m.summary, cmd = m.summary.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ShowResult displays the scored completion.
func (m *Model) ShowResult(out dto.CompletionOutput) {
	m.phase = phaseDone
	m.result = out
	m.resize()
	m.summary.SetContent(summaryContent(out))
}

// SetError returns to the opt-in step after a failed completion call.
func (m *Model) SetError(text string) {
	m.phase = phaseDeciding
	m.errText = text
}

// Result returns the scored completion, zero until ShowResult.
func (m Model) Result() dto.CompletionOutput {
	return m.result
}

// SetExportPath records where the report was written.
func (m *Model) SetExportPath(path string) {
	m.exportPath = path
}

func (m Model) View() string {
	switch m.phase {
	case phaseScoring:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Scoring your responses…")
	case phaseDone:
		return m.renderResult()
	default:
		return m.renderDecision()
	}
}

func (m Model) renderDecision() string {
	check := "[ ]"
	if m.optIn {
		check = "[x]"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Assessment complete") + "\n\n")
	sb.WriteString("All questions answered. Ready to score your AI readiness.\n\n")
	sb.WriteString(theme.Hot.Render(check) + " email me the full report\n\n")
	if m.errText != "" {
		sb.WriteString(theme.Bad.Render(m.errText) + "\n\n")
	}
	sb.WriteString(theme.Muted.Render("space: toggle  enter: get my score"))

	pane := theme.PaneActive.Width(paneWidth(m.width)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) renderResult() string {
	card := components.ScoreCard{
		Score:              m.result.ReadinessScore,
		AnnualHoursSaved:   m.result.AnnualHoursSaved,
		EstimatedDollars:   m.result.EstimatedDollars,
		TeamEfficiencyGain: m.result.TeamEfficiencyGain,
	}.Render(paneWidth(m.width))

	footer := theme.Muted.Render("c: copy summary  e: export report  q: quit")
	if m.exportPath != "" {
		footer = theme.Good.Render("report saved: "+m.exportPath) + "  " + theme.Muted.Render("q: quit")
	}
	if m.copied {
		footer = theme.Good.Render("summary copied") + "  " + footer
	}

	body := lipgloss.JoinVertical(lipgloss.Left, card, "", m.summary.View(), "", footer)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) resize() {
	m.summary.Width = paneWidth(m.width) - 2
	h := m.height - 14
	if h < 4 {
		h = 4
	}
	m.summary.Height = h
}

func summaryContent(out dto.CompletionOutput) string {
	if text := plainSummary(out); text != "" {
		return text
	}
	return theme.Muted.Render("No summary provided.")
}

func plainSummary(out dto.CompletionOutput) string {
	var sb strings.Builder
	if out.Message != "" {
		sb.WriteString(out.Message + "\n\n")
	}
	if out.SummaryMarkup != "" {
		sb.WriteString(out.SummaryMarkup)
	}
	return sb.String()
}

func paneWidth(width int) int {
	w := width - 8
	if w > 80 {
		w = 80
	}
	if w < 40 {
		w = 40
	}
	return w
}

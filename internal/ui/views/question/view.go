package question

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"airc/internal/modules/assessment/dto"
	"airc/internal/ui/components"
	"airc/internal/ui/theme"
)

// SubmitMsg is emitted when the user sends the composed answer.
type SubmitMsg struct{ Text string }

type phase int

const (
	phaseComposing phase = iota
	phaseSending
	phaseReplied
)

// Model renders the active question with an answer editor, then the
// coach's reply once the answer is accepted.
type Model struct {
	question dto.ResumeOutput
	reply    dto.SubmitOutput
	answer   textarea.Model
	spinner  spinner.Model
	phase    phase
	errText  string
	width    int
	height   int
}

func New() Model {
	ta := textarea.New()
	ta.Placeholder = "Type your answer…"
	ta.CharLimit = 2000
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{answer: ta, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.answer.SetWidth(paneWidth(m.width) - 4)
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseSending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.phase != phaseComposing {
			return m, nil
		}
		if msg.String() == "ctrl+s" {
			text := strings.TrimSpace(m.answer.Value())
			if text == "" {
				m.errText = "answer can't be empty"
				return m, nil
			}
			m.errText = ""
			return m, func() tea.Msg { return SubmitMsg{Text: text} }
		}
	}

	if m.phase != phaseComposing {
		return m, nil
	}
	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

// SetQuestion swaps in the active question and resets the editor.
func (m *Model) SetQuestion(q dto.ResumeOutput) tea.Cmd {
	m.question = q
	m.reply = dto.SubmitOutput{}
	m.phase = phaseComposing
	m.errText = ""
	m.answer.Reset()
	return m.answer.Focus()
}

// SetSending locks the editor while the answer is in flight.
func (m *Model) SetSending() tea.Cmd {
	m.phase = phaseSending
	m.answer.Blur()
	return m.spinner.Tick
}

// ShowReply displays the coach's response. The composed text is kept out
// of the editor: the answer was accepted and recorded.
func (m *Model) ShowReply(out dto.SubmitOutput) {
	m.phase = phaseReplied
	m.reply = out
}

// SetError surfaces a failed submission and unlocks the editor with the
// composed text intact, ready to retry or edit.
func (m *Model) SetError(text string) tea.Cmd {
	m.phase = phaseComposing
	m.errText = text
	return m.answer.Focus()
}

// Typing reports whether the answer editor has focus.
func (m Model) Typing() bool {
	return m.phase == phaseComposing
}

func (m Model) View() string {
	var sb strings.Builder

	innerWidth := paneWidth(m.width) - 4
	sb.WriteString(components.ProgressLine(m.question.QuestionIndex, m.question.TotalCount, m.question.Progress, innerWidth) + "\n\n")
	if m.question.QuestionIndex == 0 && m.question.FirstPrompt != "" && m.phase == phaseComposing {
		sb.WriteString(theme.Muted.Render(m.question.FirstPrompt) + "\n\n")
	}
	sb.WriteString(theme.Title.Render(m.question.QuestionText) + "\n\n")

	switch m.phase {
	case phaseSending:
		sb.WriteString(m.spinner.View() + " Sending…")
	case phaseReplied:
		sb.WriteString(m.renderReply())
	default:
		sb.WriteString(m.answer.View() + "\n\n")
		if m.errText != "" {
			sb.WriteString(theme.Bad.Render(m.errText))
		} else {
			sb.WriteString(theme.Muted.Render("ctrl+s: send answer"))
		}
	}

	pane := theme.PaneActive.Width(paneWidth(m.width)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) renderReply() string {
	var sb strings.Builder
	sb.WriteString(m.reply.ReplyText + "\n")
	if m.reply.RecommendedAction != "" {
		sb.WriteString("\n" + theme.Good.Render("→ "+m.reply.RecommendedAction) + "\n")
	}
	if len(m.reply.Tags) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("tags: "+strings.Join(m.reply.Tags, ", ")) + "\n")
	}
	if m.reply.Explainability != "" {
		sb.WriteString("\n" + theme.Muted.Render(m.reply.Explainability) + "\n")
	}
	if m.reply.WasLast {
		sb.WriteString("\n" + theme.Hot.Render("That was the last question — scoring your assessment…"))
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

package start

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"airc/internal/ui/theme"
)

// SubmitMsg is emitted when the user confirms the intake form.
type SubmitMsg struct {
	Email       string
	PersonaHint string
}

const (
	fieldEmail = iota
	fieldPersona
	fieldCount
)

// Model is the intake form: email plus an optional persona hint.
type Model struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	spinner spinner.Model
	busy    bool
	errText string
	width   int
	height  int
}

func New() Model {
	email := textinput.New()
	email.Placeholder = "you@company.com"
	email.CharLimit = 128
	email.Prompt = ""
	email.Focus()

	persona := textinput.New()
	persona.Placeholder = "e.g. operations lead at a 20-person agency (optional)"
	persona.CharLimit = 256
	persona.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		inputs:  [fieldCount]textinput.Model{email, persona},
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			email := strings.TrimSpace(m.inputs[fieldEmail].Value())
			if email == "" {
				m.errText = "email is required"
				return m.setFocus(fieldEmail)
			}
			m.errText = ""
			persona := strings.TrimSpace(m.inputs[fieldPersona].Value())
			return m, func() tea.Msg { return SubmitMsg{Email: email, PersonaHint: persona} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// SetBusy disables the form while the start request is in flight.
func (m *Model) SetBusy(busy bool) tea.Cmd {
	m.busy = busy
	if busy {
		return m.spinner.Tick
	}
	return nil
}

// SetError surfaces a failed start attempt and re-enables the form.
func (m *Model) SetError(text string) {
	m.busy = false
	m.errText = text
}

// Typing reports whether a text field currently has focus, so global key
// bindings yield while the user types.
func (m Model) Typing() bool {
	return !m.busy
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("AI Readiness Assessment") + "\n\n")
	sb.WriteString("Nine questions about how your team works today.\nYour answers build a readiness score and an ROI estimate.\n\n")

	sb.WriteString(m.fieldLabel(fieldEmail, "email") + "\n")
	sb.WriteString(m.inputs[fieldEmail].View() + "\n\n")
	sb.WriteString(m.fieldLabel(fieldPersona, "about you") + "\n")
	sb.WriteString(m.inputs[fieldPersona].View() + "\n\n")

	switch {
	case m.busy:
		sb.WriteString(m.spinner.View() + " Starting your session…")
	case m.errText != "":
		sb.WriteString(theme.Bad.Render(m.errText))
	default:
		sb.WriteString(theme.Muted.Render("tab: next field  enter: begin"))
	}

	pane := theme.PaneActive.Width(paneWidth(m.width)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

func (m Model) fieldLabel(field int, label string) string {
	if m.focus == field {
		return theme.Hot.Render("▸ " + label)
	}
	return theme.Muted.Render("  " + label)
}

func (m Model) setFocus(field int) (Model, tea.Cmd) {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == field {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, cmd
}

func paneWidth(width int) int {
	w := width - 8
	if w > 72 {
		w = 72
	}
	if w < 40 {
		w = 40
	}
	return w
}

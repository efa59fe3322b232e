package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"airc/internal/modules/assessment/dto"
	apperrors "airc/internal/platform/errors"
	"airc/internal/ui/theme"
	completeview "airc/internal/ui/views/complete"
	questionview "airc/internal/ui/views/question"
	startview "airc/internal/ui/views/start"
)

// ─── port ────────────────────────────────────────────────────────────────────

type assessmentPort interface {
	Start(ctx context.Context, email, personaHint string) (dto.StartOutput, error)
	Resume(ctx context.Context, sessionID string) (dto.ResumeOutput, error)
	Answer(ctx context.Context, sessionID, text string) (dto.SubmitOutput, error)
	Complete(ctx context.Context, sessionID string, optInEmail bool) (dto.CompletionOutput, error)
	Export(ctx context.Context, completion dto.CompletionOutput) (dto.ExportOutput, error)
}

// ─── pages ───────────────────────────────────────────────────────────────────

type page int

const (
	pageStart page = iota
	pageQuestion
	pageComplete
	pageInvalid
)

// Transition pacing, matched to the flow's feel: a short beat after a
// reply, a longer one before scoring, and a visible pause on an invalid
// session before falling back to the intake form.
const (
	advanceDelay    = time.Second
	completionDelay = 1500 * time.Millisecond
	redirectDelay   = 2 * time.Second
)

// ─── async messages ───────────────────────────────────────────────────────────

type startedMsg struct {
	out dto.StartOutput
	err error
}

type resumedMsg struct {
	out dto.ResumeOutput
	err error
}

type answeredMsg struct {
	out dto.SubmitOutput
	err error
}

type completedMsg struct {
	out dto.CompletionOutput
	err error
}

type exportedMsg struct {
	out dto.ExportOutput
	err error
}

type advanceMsg struct{}
type completionDueMsg struct{}
type redirectMsg struct{}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Send   key.Binding
	Toggle key.Binding
	Export key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Send:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send answer")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle opt-in")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export report")),
		Help:   key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Toggle, k.Export},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns page routing and the timed
// transitions between pages; all business logic goes through the
// assessment port, all rendering through the page sub-views.
type Model struct {
	port assessmentPort

	// routeID is the session id the program was invoked with; empty means
	// a fresh run starting at the intake form.
	routeID   string
	sessionID string

	page         page
	startView    startview.Model
	questionView questionview.Model
	completeView completeview.Model

	keys     keyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(port assessmentPort, routeID string) Model {
	m := Model{
		port:         port,
		routeID:      routeID,
		page:         pageStart,
		startView:    startview.New(),
		questionView: questionview.New(),
		completeView: completeview.New(),
		keys:         defaultKeys(),
		help:         help.New(),
		status:       "ready",
	}
	if routeID != "" {
		m.page = pageQuestion
		m.sessionID = routeID
		m.status = "resuming session…"
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startView.Init(), m.questionView.Init()}
	if m.routeID != "" {
		cmds = append(cmds, m.resumeCmd(m.routeID))
	}
	return tea.Batch(cmds...)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.propagateSize()

	case startview.SubmitMsg:
		cmd := m.startView.SetBusy(true)
		m.status = "starting session…"
		return m, tea.Batch(cmd, m.startCmd(msg.Email, msg.PersonaHint))

	case startedMsg:
		if msg.err != nil {
			m.startView.SetError("could not start: " + msg.err.Error())
			m.status = "start failed"
			return m, nil
		}
		m.sessionID = msg.out.SessionID
		m.status = "session " + msg.out.SessionID
		return m, m.resumeCmd(m.sessionID)

	case resumedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrNoSession) || errors.Is(msg.err, apperrors.ErrSessionMismatch) {
				m.page = pageInvalid
				m.status = "session not found"
				return m, tea.Tick(redirectDelay, func(time.Time) tea.Msg { return redirectMsg{} })
			}
			m.status = "resume failed: " + msg.err.Error()
			return m, nil
		}
		m.page = pageQuestion
		m.status = "session " + msg.out.SessionID
		return m, m.questionView.SetQuestion(msg.out)

	case questionview.SubmitMsg:
		m.status = "sending answer…"
		return m, tea.Batch(m.questionView.SetSending(), m.answerCmd(msg.Text))

	case answeredMsg:
		if msg.err != nil {
			// The session is untouched; the composed text survives for a
			// retry or an edit.
			m.status = "submission failed"
			return m, m.questionView.SetError(msg.err.Error())
		}
		m.questionView.ShowReply(msg.out)
		m.status = "answer recorded"
		if msg.out.WasLast {
			return m, tea.Tick(completionDelay, func(time.Time) tea.Msg { return completionDueMsg{} })
		}
		return m, tea.Tick(advanceDelay, func(time.Time) tea.Msg { return advanceMsg{} })

	case advanceMsg:
		return m, m.resumeCmd(m.sessionID)

	case completionDueMsg:
		m.page = pageComplete
		m.status = "assessment complete"
		return m.propagateSize()

	case completeview.RequestMsg:
		m.status = "scoring…"
		return m, m.completeCmd(msg.OptInEmail)

	case completedMsg:
		if msg.err != nil {
			m.completeView.SetError("scoring failed: " + msg.err.Error())
			m.status = "completion failed"
			return m, nil
		}
		m.completeView.ShowResult(msg.out)
		m.status = "scored " + msg.out.BandLabel
		return m, nil

	case completeview.ExportMsg:
		m.status = "exporting report…"
		return m, m.exportCmd()

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
			return m, nil
		}
		m.completeView.SetExportPath(msg.out.Path)
		m.status = "report saved"
		return m, nil

	case redirectMsg:
		m.page = pageStart
		m.sessionID = ""
		m.startView = startview.New()
		m.status = "start a new assessment"
		return m.propagateSize()

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+h":
			m.showHelp = true
			return m, nil
		case "q":
			if !m.typing() {
				return m, tea.Quit
			}
		}
	}

	return m.updateActivePage(msg)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()

	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
			m.help.View(m.keys))
	case m.page == pageInvalid:
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center,
			theme.Warn.Render("Session not found or expired — taking you back to the start…"))
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) activeView() string {
	switch m.page {
	case pageQuestion:
		return m.questionView.View()
	case pageComplete:
		return m.completeView.View()
	default:
		return m.startView.View()
	}
}

func (m Model) renderHeader() string {
	title := theme.Hot.Render(" airc ") + theme.Muted.Render(" AI Readiness Coach")
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(title) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.sessionID != "" {
		left = theme.Hot.Render("● "+m.sessionID) + "  " + left
	}
	right := theme.Muted.Render("ctrl+h:help  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// typing reports whether the active page is accepting free text, in
// which case plain-letter bindings must yield.
func (m Model) typing() bool {
	switch m.page {
	case pageStart:
		return m.startView.Typing()
	case pageQuestion:
		return m.questionView.Typing()
	}
	return false
}

func (m Model) propagateSize() (tea.Model, tea.Cmd) {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.startView, _ = m.startView.Update(sz)
	m.questionView, _ = m.questionView.Update(sz)
	m.completeView, _ = m.completeView.Update(sz)
	return m, nil
}

func (m Model) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case pageStart:
		m.startView, cmd = m.startView.Update(msg)
	case pageQuestion:
		m.questionView, cmd = m.questionView.Update(msg)
	case pageComplete:
		m.completeView, cmd = m.completeView.Update(msg)
	}
	return m, cmd
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) startCmd(email, personaHint string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Start(context.Background(), email, personaHint)
		return startedMsg{out: out, err: err}
	}
}

func (m Model) resumeCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Resume(context.Background(), sessionID)
		return resumedMsg{out: out, err: err}
	}
}

func (m Model) answerCmd(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Answer(context.Background(), m.sessionID, text)
		return answeredMsg{out: out, err: err}
	}
}

func (m Model) completeCmd(optIn bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Complete(context.Background(), m.sessionID, optIn)
		return completedMsg{out: out, err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Export(context.Background(), m.completeView.Result())
		return exportedMsg{out: out, err: err}
	}
}

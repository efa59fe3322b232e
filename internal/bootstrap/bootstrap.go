package bootstrap

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	assessmentinadapter "airc/internal/modules/assessment/adapter/in"
	assessmentoutadapter "airc/internal/modules/assessment/adapter/out"
	assessmentdomain "airc/internal/modules/assessment/domain"
	assessmentservice "airc/internal/modules/assessment/service"
	assessmentusecase "airc/internal/modules/assessment/usecase"
	sessioninadapter "airc/internal/modules/session/adapter/in"
	sessionoutadapter "airc/internal/modules/session/adapter/out"
	sessionout "airc/internal/modules/session/port/out"
	sessionservice "airc/internal/modules/session/service"
	sessionusecase "airc/internal/modules/session/usecase"
	"airc/internal/platform/clock"
	"airc/internal/platform/config"
	"airc/internal/platform/id"
	uiapp "airc/internal/ui/app"
)

type App struct {
	SessionCLI    sessioninadapter.CLIHandler
	AssessmentCLI assessmentinadapter.CLIHandler

	// Degraded is set when durable state could not be opened and the app
	// is running on an in-memory-only store: everything works, but
	// progress will not survive a restart.
	Degraded bool

	store *sessionoutadapter.SQLiteStateStore
}

func New(cfg config.Config) (*App, error) {
	app := &App{}

	var stateStore sessionout.StateStore
	if err := os.MkdirAll(cfg.HomeDir, 0o755); err != nil {
		app.Degraded = true
		stateStore = sessionoutadapter.NewNullStateStore()
	} else {
		store, err := sessionoutadapter.NewSQLiteStateStore(cfg.DBPath)
		if err != nil {
			app.Degraded = true
			stateStore = sessionoutadapter.NewNullStateStore()
		} else {
			app.store = store
			stateStore = store
		}
	}

	sessionUC := sessionusecase.NewInteractor(sessionservice.NewController(stateStore))

	flowSvc := assessmentservice.NewFlowService(assessmentdomain.DefaultCatalog(), id.UUID{})
	gateway, err := assessmentoutadapter.NewHTTPCoachGateway(assessmentoutadapter.GatewayConfig{
		BaseURL:    cfg.CoachURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("new coach gateway: %w", err)
	}
	reports := assessmentoutadapter.NewFileReportStore(cfg.ReportDir)
	assessmentUC := assessmentusecase.NewInteractor(flowSvc, gateway, reports, sessionUC, clock.SystemClock{})

	app.SessionCLI = sessioninadapter.NewCLIHandler(sessionUC)
	app.AssessmentCLI = assessmentinadapter.NewCLIHandler(assessmentUC)
	return app, nil
}

// Close releases the durable state store, if one was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func RunTUI(app *App, sessionID string) error {
	model := uiapp.NewModel(app.AssessmentCLI, sessionID)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

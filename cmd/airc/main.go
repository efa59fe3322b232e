package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"airc/internal/bootstrap"
	"airc/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homeDir string

	root := &cobra.Command{
		Use:           "airc",
		Short:         "AI Readiness Coach",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homeDir, "home", "", "state directory (default ~/.airc)")

	root.AddCommand(newTUICmd(&homeDir))
	root.AddCommand(newStartCmd(&homeDir))
	root.AddCommand(newAnswerCmd(&homeDir))
	root.AddCommand(newCompleteCmd(&homeDir))
	root.AddCommand(newStatusCmd(&homeDir))
	root.AddCommand(newResetCmd(&homeDir))
	return root
}

func loadApp(homeDir string) (*bootstrap.App, error) {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(homeDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [session-id]",
		Short: "Run the interactive assessment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homeDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if app.Degraded {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: state dir unavailable, progress will not survive a restart")
			}
			sessionID := ""
			if len(args) == 1 {
				sessionID = args[0]
			}
			return bootstrap.RunTUI(app, sessionID)
		},
	}
}

func newStartCmd(homeDir *string) *cobra.Command {
	var email, persona string
	start := &cobra.Command{
		Use:   "start --email <address>",
		Short: "Start a new assessment session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("--email is required")
			}
			app, err := loadApp(*homeDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AssessmentCLI.Start(context.Background(), email, persona)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started: %s\n", out.SessionID)
			if out.FirstPrompt != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.FirstPrompt)
			}
			return nil
		},
	}
	start.Flags().StringVar(&email, "email", "", "contact email")
	start.Flags().StringVar(&persona, "persona", "", "optional persona hint")
	return start
}

func newAnswerCmd(homeDir *string) *cobra.Command {
	var sessionID string
	answer := &cobra.Command{
		Use:   "answer --session <id> <text>",
		Short: "Answer the active question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(sessionID) == "" {
				return fmt.Errorf("--session is required")
			}
			app, err := loadApp(*homeDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AssessmentCLI.Answer(context.Background(), sessionID, args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "answered %s (%d/%d)\n", out.QuestionID, out.AnsweredCount, out.TotalCount)
			if out.ReplyText != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.ReplyText)
			}
			if out.WasLast {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "all questions answered: run `airc complete` for your score")
			}
			return nil
		},
	}
	answer.Flags().StringVar(&sessionID, "session", "", "session id")
	return answer
}

func newCompleteCmd(homeDir *string) *cobra.Command {
	var sessionID string
	var optIn bool
	var export bool
	complete := &cobra.Command{
		Use:   "complete --session <id>",
		Short: "Score the assessment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(sessionID) == "" {
				return fmt.Errorf("--session is required")
			}
			app, err := loadApp(*homeDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.AssessmentCLI.Complete(context.Background(), sessionID, optIn)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "readiness score: %d/100 (%s)\n", out.ReadinessScore, out.BandLabel)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "hours saved per year: %d\n", out.AnnualHoursSaved)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "estimated annual value: $%d\n", out.EstimatedDollars)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "team efficiency gain: %s\n", out.TeamEfficiencyGain)
			if strings.TrimSpace(out.Message) != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			}
			if export {
				saved, err := app.AssessmentCLI.Export(context.Background(), out)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report saved: %s\n", saved.Path)
			}
			return nil
		},
	}
	complete.Flags().StringVar(&sessionID, "session", "", "session id")
	complete.Flags().BoolVar(&optIn, "opt-in", true, "receive the full report by email")
	complete.Flags().BoolVar(&export, "export", false, "save a markdown report locally")
	return complete
}

func newStatusCmd(homeDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homeDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			snapshot, err := app.SessionCLI.Snapshot(context.Background())
			if err != nil {
				return err
			}
			if snapshot.SessionID == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no stored session")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session: %s\n", snapshot.SessionID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current question: %s\n", snapshot.CurrentQuestionID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "answered: %s\n", strings.Join(snapshot.Answered, ", "))
			return nil
		},
	}
}

func newResetCmd(homeDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the stored session state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homeDir)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.SessionCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session state cleared")
			return nil
		},
	}
}

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"signassist/internal/eventbus"
	"signassist/internal/history"
	"signassist/internal/logging"
	"signassist/internal/ui"
)

func runTUI(cmd *cobra.Command, flags *globalFlags, term string) error {
	// The UI owns the terminal, so logs go to a file
	level := flags.logLevel
	if level == "" {
		level = "info"
	}
	logger, logCloser, err := logging.NewFile(flags.logFile, level)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Could not open log file: %v\n", err)
		logger = zerolog.Nop()
	} else {
		defer logCloser.Close()
	}

	a, err := newApp(cmd.Context(), flags, cmd.Flags(), true, logger)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		return err
	}
	defer a.Close()

	logger.Info().
		Str("provider", a.cfg.AI.Provider).
		Str("model", a.cfg.ModelName()).
		Str("term", term).
		Msg("starting UI")

	recorder := history.NewRecorder(a.cfg.UISettings.HistorySize, a.bus)
	defer recorder.Close()

	orchestrator := a.newOrchestrator()
	defer orchestrator.Close()

	model := ui.NewModel(ui.Options{
		Config:      a.cfg,
		Bus:         a.bus,
		Search:      orchestrator,
		InitialTerm: term,
		Logger:      logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	model.SetProgram(p)

	// Forward the events the UI shows
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{eventbus.EventHistoryUpdated, eventbus.EventError, eventbus.EventConfigSaved} {
		unsubscribe := a.bus.Subscribe(t, forward)
		defer unsubscribe()
	}

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("error running program")
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info().Strs("history", recorder.Terms()).Msg("UI exited normally")
	return nil
}

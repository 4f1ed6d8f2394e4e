package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keshon/cosmos/internal/command"
	"github.com/keshon/cosmos/internal/config"
	"github.com/keshon/cosmos/internal/console"
	"github.com/keshon/cosmos/internal/frames"
	"github.com/keshon/cosmos/internal/middleware"
	"github.com/keshon/cosmos/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, closeLog, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logs := console.NewLogHook()
	log.AddHook(logs)

	policy := command.AllowDuplicates
	if !cfg.AllowDuplicateAliases {
		policy = command.RejectDuplicates
	}

	c := console.New(
		console.WithDuplicatePolicy(policy),
		console.WithLogger(log),
	)
	if cfg.DebugArgs {
		c.Use(middleware.WithDebugArgsPrint(c.Logger()))
	}
	if cfg.RecoverPanics {
		c.Use(middleware.WithRecover(c, c.Logger()))
	}

	sampler := frames.NewSampler(cfg.CaptureFPS)
	host := tui.New(c, sampler, logs, tui.Options{FrameRate: cfg.FrameRate})
	c.Initialize(host, sampler, cfg.PrintInitialize)
	if cfg.StartOpen {
		c.Open()
	}

	c.Logger().WithField("policy", policy).Info("starting console host")
	if _, err := tea.NewProgram(host, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("console host: %w", err)
	}
	log.Info("console host exited")
	return nil
}

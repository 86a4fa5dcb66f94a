package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxlabs/lux/internal/app"
	"github.com/luxlabs/lux/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive shell",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.Settings.Load()
	shell := tui.New(a.Scheduler, a.Todo, tui.NewTheme(cfg.Theme, a.Log), a.Session)
	if err := shell.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/luxlabs/lux/internal/scheduler"
	"github.com/luxlabs/lux/internal/todo"
)

var rootCmd = &cobra.Command{
	Use:   "lux",
	Short: "Lux - personal day planner",
	Long:  `Lux is a local-first day planner: a scheduler, a to-do list, and an interactive terminal shell over one SQLite file.`,
	// No RunE - defaults to showing help when no subcommand is provided
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(todoCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logFailure records storage-level failures before they surface to the user.
// Validation errors carry their own message and are not logged.
func logFailure(log zerolog.Logger, err error) error {
	if err != nil && !errors.Is(err, scheduler.ErrInvalidInput) && !errors.Is(err, todo.ErrInvalidInput) {
		log.Error().Err(err).Msg("command failed")
	}
	return err
}

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/luxlabs/lux/internal/app"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change settings",
	RunE:  runSettingsShow,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTheme,
}

func init() {
	settingsCmd.AddCommand(settingsThemeCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.Settings.Load()
	fmt.Printf("theme:      %s\n", cfg.Theme)
	fmt.Printf("font_scale: %g\n", cfg.FontScale)
	fmt.Printf("file:       %s\n", a.Settings.Path())
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.Settings.Load()
	cfg.Theme = args[0]
	if err := a.Settings.Save(cfg); err != nil {
		return logFailure(a.Log, err)
	}
	color.Green("Theme set to %s", cfg.Theme)
	return nil
}

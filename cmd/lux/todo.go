package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/luxlabs/lux/internal/app"
	"github.com/luxlabs/lux/internal/models"
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage to-do items",
}

var todoAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a to-do item",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoAdd,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming to-do items",
	RunE:  runTodoList,
}

var todoDoneCmd = &cobra.Command{
	Use:   "done [occurrence-id]",
	Short: "Mark an item done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoDone,
}

var todoUndoneCmd = &cobra.Command{
	Use:   "undone [occurrence-id]",
	Short: "Clear an item's done mark",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoUndone,
}

var todoMoveCmd = &cobra.Command{
	Use:   "move [occurrence-id]",
	Short: "Move an item to another day",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoMove,
}

var todoArchiveCmd = &cobra.Command{
	Use:   "archive [occurrence-id]",
	Short: "Archive an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoArchive,
}

var (
	todoNotes  string
	todoDate   string
	todoTime   string
	todoDays   int
	todoTarget string
)

func init() {
	todoCmd.AddCommand(todoAddCmd, todoListCmd, todoDoneCmd, todoUndoneCmd, todoMoveCmd, todoArchiveCmd)

	todoAddCmd.Flags().StringVar(&todoNotes, "notes", "", "Item notes")
	todoAddCmd.Flags().StringVar(&todoDate, "date", "", "Due date (default today)")
	todoAddCmd.Flags().StringVar(&todoTime, "time", "", "Due time, e.g. 09:00")

	todoListCmd.Flags().IntVar(&todoDays, "days", 1, "Days ahead to include (1-31)")

	todoMoveCmd.Flags().StringVar(&todoTarget, "to", "", "Target date (required)")
	todoMoveCmd.MarkFlagRequired("to")
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.Todo.AddTask(args[0], todoNotes, todoDate, todoTime)
	if err != nil {
		return logFailure(a.Log, err)
	}
	color.Green("Added item %d", id)
	return nil
}

func runTodoList(cmd *cobra.Command, args []string) error {
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	occs, err := a.Todo.ListUpcoming(todoDays)
	if err != nil {
		return logFailure(a.Log, err)
	}
	if len(occs) == 0 {
		fmt.Println("Nothing due.")
		return nil
	}
	return printOccurrences(occs)
}

func printOccurrences(occs []models.OccurrenceWithTask) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDUE\tTIME\tDONE\tTITLE")
	for _, o := range occs {
		done := " "
		if o.Completed() {
			done = "x"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", o.ID, o.DueDate, o.DueTime, done, o.Title)
	}
	return w.Flush()
}

func runTodoDone(cmd *cobra.Command, args []string) error {
	return setTodoCompleted(args[0], true)
}

func runTodoUndone(cmd *cobra.Command, args []string) error {
	return setTodoCompleted(args[0], false)
}

func setTodoCompleted(arg string, completed bool) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Todo.SetCompleted(id, completed); err != nil {
		return logFailure(a.Log, err)
	}
	if completed {
		color.Green("Done: %d", id)
	} else {
		color.Yellow("Reopened: %d", id)
	}
	return nil
}

func runTodoMove(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Todo.Move(id, todoTarget); err != nil {
		return logFailure(a.Log, err)
	}
	color.Green("Moved item %d to %s", id, todoTarget)
	return nil
}

func runTodoArchive(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a, err := app.New()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Todo.Archive(id); err != nil {
		return logFailure(a.Log, err)
	}
	color.Yellow("Archived item %d", id)
	return nil
}

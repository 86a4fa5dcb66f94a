// Package tui provides the interactive terminal shell for Lux.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/luxlabs/lux/internal/models"
	"github.com/luxlabs/lux/internal/payload"
	"github.com/luxlabs/lux/internal/scheduler"
	"github.com/luxlabs/lux/internal/timeutil"
	"github.com/luxlabs/lux/internal/todo"
)

// App is the shell model. It owns the navigation bar and delegates the body
// to the active module's view.
type App struct {
	sched   *scheduler.Service
	todos   *todo.Service
	theme   Theme
	session string

	moduleIdx   int
	date        string
	entries     []models.ScheduledEntry
	occurrences []models.OccurrenceWithTask
	selectedIdx int
	carry       string
	message     string
	input       textinput.Model
	adding      bool
	width       int
	height      int
}

type entriesLoadedMsg struct {
	date    string
	entries []models.ScheduledEntry
}

type occurrencesLoadedMsg struct {
	occurrences []models.OccurrenceWithTask
}

type errMsg struct {
	err error
}

// New creates the shell, starting on the schedule view for today. The
// session id scopes pick-up/drop payloads to this process.
func New(sched *scheduler.Service, todos *todo.Service, theme Theme, session string) *App {
	if session == "" {
		session = payload.NewSessionID()
	}
	ti := textinput.New()
	ti.Placeholder = "New item title"
	ti.CharLimit = 200
	ti.Width = 50
	return &App{
		input:     ti,
		sched:     sched,
		todos:     todos,
		theme:     theme,
		session:   session,
		moduleIdx: moduleIndex("scheduler"),
		date:      timeutil.Today(),
	}
}

// Run starts the TUI.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.fetchEntries(), a.fetchOccurrences())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case entriesLoadedMsg:
		if msg.date == a.date {
			a.entries = msg.entries
			a.clampSelection()
		}

	case occurrencesLoadedMsg:
		a.occurrences = msg.occurrences
		a.clampSelection()

	case errMsg:
		a.message = msg.err.Error()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.adding {
		switch msg.String() {
		case "esc":
			a.adding = false
			a.input.Reset()
			return a, nil
		case "enter":
			title := strings.TrimSpace(a.input.Value())
			a.adding = false
			a.input.Reset()
			if title == "" {
				return a, nil
			}
			return a, a.addTodo(title)
		case "ctrl+c":
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "tab":
		a.moduleIdx = (a.moduleIdx + 1) % len(modules)
		a.selectedIdx = 0
		return a, a.refreshActive()

	case "shift+tab":
		a.moduleIdx = (a.moduleIdx + len(modules) - 1) % len(modules)
		a.selectedIdx = 0
		return a, a.refreshActive()

	case "left", "h":
		if a.activeKey() == "scheduler" {
			return a, a.shiftDay(-1)
		}

	case "right", "l":
		if a.activeKey() == "scheduler" {
			return a, a.shiftDay(1)
		}

	case "t":
		if a.activeKey() == "scheduler" {
			a.date = timeutil.Today()
			return a, a.fetchEntries()
		}

	case "up", "k":
		if a.selectedIdx > 0 {
			a.selectedIdx--
		}

	case "down", "j":
		if a.selectedIdx < a.activeListLen()-1 {
			a.selectedIdx++
		}

	case "x", " ":
		if a.activeKey() == "todo" && a.selectedIdx < len(a.occurrences) {
			occ := a.occurrences[a.selectedIdx]
			return a, a.toggleCompleted(occ.ID, !occ.Completed())
		}

	case "a":
		switch a.activeKey() {
		case "todo":
			if a.selectedIdx < len(a.occurrences) {
				return a, a.archiveOccurrence(a.occurrences[a.selectedIdx].ID)
			}
		case "scheduler":
			if a.selectedIdx < len(a.entries) {
				return a, a.archiveEntry(a.entries[a.selectedIdx].ID)
			}
		}

	case "n":
		if a.activeKey() == "todo" {
			a.adding = true
			a.input.Focus()
			return a, textinput.Blink
		}

	case "m":
		// Pick up the selected row as a move payload.
		switch a.activeKey() {
		case "todo":
			if a.selectedIdx < len(a.occurrences) {
				raw, err := payload.EncodeOccurrenceMove(a.session, a.occurrences[a.selectedIdx].ID)
				if err != nil {
					a.message = err.Error()
					return a, nil
				}
				a.carry = raw
				a.message = "Picked up item. Switch to a day and press p to drop."
			}
		case "scheduler":
			if a.selectedIdx < len(a.entries) {
				raw, err := payload.EncodeEntryMove(a.session, a.entries[a.selectedIdx].ID)
				if err != nil {
					a.message = err.Error()
					return a, nil
				}
				a.carry = raw
				a.message = "Picked up entry. Switch to a day and press p to drop."
			}
		}

	case "p":
		// Drop the carried payload onto the visible day.
		if a.activeKey() == "scheduler" && a.carry != "" {
			return a, a.dropCarry()
		}

	case "r":
		return a, a.refreshActive()

	case "1", "2", "3", "4", "5", "6":
		// Direct module jump.
		idx := int(msg.String()[0] - '1')
		if idx < len(modules) {
			a.moduleIdx = idx
			a.selectedIdx = 0
			return a, a.refreshActive()
		}
	}
	return a, nil
}

func (a *App) addTodo(title string) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.todos.AddTask(title, "", "", ""); err != nil {
			return errMsg{err}
		}
		occs, err := a.todos.ListToday()
		if err != nil {
			return errMsg{err}
		}
		return occurrencesLoadedMsg{occurrences: occs}
	}
}

func (a *App) dropCarry() tea.Cmd {
	raw, date := a.carry, a.date
	a.carry = ""
	a.message = ""
	return func() tea.Msg {
		env, err := payload.Decode(raw, a.session)
		if err != nil {
			return errMsg{err}
		}

		switch env.Kind {
		case payload.KindOccurrenceMove:
			id, ok := env.Int64("occurrence_id")
			if !ok {
				return errMsg{fmt.Errorf("payload missing occurrence_id")}
			}
			if err := a.todos.Move(id, date); err != nil {
				return errMsg{err}
			}
			occs, err := a.todos.ListToday()
			if err != nil {
				return errMsg{err}
			}
			return occurrencesLoadedMsg{occurrences: occs}

		case payload.KindEntryMove:
			id, ok := env.Int64("entry_id")
			if !ok {
				return errMsg{fmt.Errorf("payload missing entry_id")}
			}
			entry, err := a.sched.Entry(id)
			if err != nil {
				return errMsg{err}
			}
			if entry == nil {
				return errMsg{fmt.Errorf("entry %d not found", id)}
			}
			// Same clock time on the target day, duration preserved.
			newStart, newEnd, err := timeutil.MoveToDate(entry.StartDT, entry.EndDT, date)
			if err != nil {
				return errMsg{err}
			}
			if err := a.sched.Reschedule(id, newStart, newEnd); err != nil {
				return errMsg{err}
			}
			entries, err := a.sched.ListDay(date, false)
			if err != nil {
				return errMsg{err}
			}
			return entriesLoadedMsg{date: date, entries: entries}

		default:
			return errMsg{fmt.Errorf("unsupported payload kind %q", env.Kind)}
		}
	}
}

func (a *App) activeKey() string {
	return modules[a.moduleIdx].Key
}

func (a *App) activeListLen() int {
	switch a.activeKey() {
	case "scheduler":
		return len(a.entries)
	case "todo":
		return len(a.occurrences)
	}
	return 0
}

func (a *App) clampSelection() {
	if n := a.activeListLen(); a.selectedIdx >= n {
		a.selectedIdx = max(0, n-1)
	}
}

func (a *App) refreshActive() tea.Cmd {
	switch a.activeKey() {
	case "scheduler":
		return a.fetchEntries()
	case "todo":
		return a.fetchOccurrences()
	}
	return nil
}

func (a *App) shiftDay(n int) tea.Cmd {
	d, err := timeutil.AddDays(a.date, n)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	a.date = d
	a.selectedIdx = 0
	return a.fetchEntries()
}

func (a *App) fetchEntries() tea.Cmd {
	date := a.date
	return func() tea.Msg {
		entries, err := a.sched.ListDay(date, false)
		if err != nil {
			return errMsg{err}
		}
		return entriesLoadedMsg{date: date, entries: entries}
	}
}

func (a *App) fetchOccurrences() tea.Cmd {
	return func() tea.Msg {
		occs, err := a.todos.ListToday()
		if err != nil {
			return errMsg{err}
		}
		return occurrencesLoadedMsg{occurrences: occs}
	}
}

func (a *App) toggleCompleted(id int64, completed bool) tea.Cmd {
	return func() tea.Msg {
		if err := a.todos.SetCompleted(id, completed); err != nil {
			return errMsg{err}
		}
		occs, err := a.todos.ListToday()
		if err != nil {
			return errMsg{err}
		}
		return occurrencesLoadedMsg{occurrences: occs}
	}
}

func (a *App) archiveOccurrence(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := a.todos.Archive(id); err != nil {
			return errMsg{err}
		}
		occs, err := a.todos.ListToday()
		if err != nil {
			return errMsg{err}
		}
		return occurrencesLoadedMsg{occurrences: occs}
	}
}

func (a *App) archiveEntry(id int64) tea.Cmd {
	date := a.date
	return func() tea.Msg {
		if err := a.sched.Archive(id); err != nil {
			return errMsg{err}
		}
		entries, err := a.sched.ListDay(date, false)
		if err != nil {
			return errMsg{err}
		}
		return entriesLoadedMsg{date: date, entries: entries}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.theme.Title.Render("Lux"))
	b.WriteString("  ")
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	active := modules[a.moduleIdx]
	switch {
	case active.Placeholder:
		b.WriteString(a.renderPlaceholder(active))
	case active.Key == "scheduler":
		b.WriteString(a.renderDay())
	case active.Key == "todo":
		b.WriteString(a.renderTodo())
	}

	if a.message != "" {
		b.WriteString("\n")
		b.WriteString(a.theme.Error.Render(a.message))
	}
	b.WriteString("\n")
	b.WriteString(a.theme.Muted.Render("tab: switch  ←/→: day  n: new  x: done  m: pick up  p: drop  a: archive  q: quit"))
	return b.String()
}

func (a *App) renderTabs() string {
	parts := make([]string, 0, len(modules))
	for i, m := range modules {
		style := a.theme.Tab
		if i == a.moduleIdx {
			style = a.theme.TabOn
		}
		parts = append(parts, style.Render(m.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderPlaceholder(m ModuleSpec) string {
	body := fmt.Sprintf("%s\n\n%s", m.Title, a.theme.Muted.Render("Coming soon."))
	return a.theme.Card.Render(body)
}

func (a *App) renderDay() string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render(a.date))
	b.WriteString("\n")

	if len(a.entries) == 0 {
		b.WriteString(a.theme.Muted.Render("  Nothing scheduled."))
		return b.String()
	}
	for i, e := range a.entries {
		title := a.sched.ResolveTitle(e.ItemKind, e.ItemRef, e.TitleCache)
		line := fmt.Sprintf("%s – %s  %s", clockOf(e.StartDT), clockOf(e.EndDT), title)
		style := a.theme.Item
		if i == a.selectedIdx {
			style = a.theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderTodo() string {
	var b strings.Builder
	b.WriteString(a.theme.Title.Render("Today"))
	b.WriteString("\n")

	if a.adding {
		b.WriteString(a.theme.Card.Render(a.input.View()))
		b.WriteString("\n")
	}
	if len(a.occurrences) == 0 {
		b.WriteString(a.theme.Muted.Render("  Nothing due."))
		return b.String()
	}
	for i, o := range a.occurrences {
		mark := "[ ]"
		if o.Completed() {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, o.Title)
		if o.DueTime != "" {
			line += "  " + a.theme.Muted.Render(o.DueTime)
		}
		style := a.theme.Item
		switch {
		case i == a.selectedIdx:
			style = a.theme.Selected
		case o.Completed():
			style = a.theme.Done
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// clockOf trims a canonical timestamp down to HH:MM for display.
func clockOf(dt string) string {
	if len(dt) >= 16 {
		return dt[11:16]
	}
	return dt
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

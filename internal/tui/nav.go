package tui

// ModuleSpec describes one feature surface in the shell's navigation bar.
// Modules render in registration order; Placeholder modules show a stub
// card until their surface is built out.
type ModuleSpec struct {
	Key         string
	Title       string
	Placeholder bool
}

// modules is the fixed navigation order of the shell.
var modules = []ModuleSpec{
	{Key: "journal", Title: "Journal", Placeholder: true},
	{Key: "scheduler", Title: "Schedule"},
	{Key: "meals", Title: "Meals", Placeholder: true},
	{Key: "exercise", Title: "Exercise", Placeholder: true},
	{Key: "goals", Title: "Goals", Placeholder: true},
	{Key: "todo", Title: "To-Do"},
}

// moduleIndex returns the position of a module key, or 0 when unknown.
func moduleIndex(key string) int {
	for i, m := range modules {
		if m.Key == key {
			return i
		}
	}
	return 0
}

// Package models defines the core domain types for Lux.
package models

// ItemKindAdhoc tags scheduler-native entries that carry no external owner.
// Their display title always comes from the title cache, never a provider.
const ItemKindAdhoc = "adhoc"

// ScheduledEntry is a persisted time interval tied to an external item via
// an item_kind/item_ref pair. There is no foreign key into feature tables;
// the scheduler stays decoupled from feature schemas.
type ScheduledEntry struct {
	ID         int64  `json:"id"`
	ItemKind   string `json:"item_kind"`
	ItemRef    string `json:"item_ref"`
	StartDT    string `json:"start_dt"` // YYYY-MM-DD HH:MM:SS
	EndDT      string `json:"end_dt"`   // YYYY-MM-DD HH:MM:SS
	TitleCache string `json:"title_cache,omitempty"`
	NotesCache string `json:"notes_cache,omitempty"`
	Archived   bool   `json:"archived"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// TaskDefinition is the durable identity of a to-do item. Occurrences hang
// off it; the definition itself carries no date.
type TaskDefinition struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Notes        string `json:"notes"`
	ParentTaskID *int64 `json:"parent_task_id,omitempty"`
	Archived     bool   `json:"archived"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// TaskOccurrence is a single dated instance of a task definition. A non-empty
// CompletedAt means done; SortKey keeps stable append order within one day.
type TaskOccurrence struct {
	ID          int64  `json:"id"`
	TaskID      int64  `json:"task_id"`
	DueDate     string `json:"due_date"`           // YYYY-MM-DD
	DueTime     string `json:"due_time,omitempty"` // HH:MM, optional
	SortKey     int64  `json:"sort_key"`
	CompletedAt string `json:"completed_at,omitempty"`
	Archived    bool   `json:"archived"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// OccurrenceWithTask is an occurrence joined to its definition so list views
// avoid N+1 task lookups.
type OccurrenceWithTask struct {
	ID          int64  `json:"id"`
	TaskID      int64  `json:"task_id"`
	Title       string `json:"title"`
	Notes       string `json:"notes"`
	DueDate     string `json:"due_date"`
	DueTime     string `json:"due_time,omitempty"`
	SortKey     int64  `json:"sort_key"`
	CompletedAt string `json:"completed_at,omitempty"`
	Archived    bool   `json:"archived"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// Completed reports whether the occurrence has a completion timestamp.
func (o TaskOccurrence) Completed() bool { return o.CompletedAt != "" }

// Completed reports whether the joined occurrence has a completion timestamp.
func (o OccurrenceWithTask) Completed() bool { return o.CompletedAt != "" }

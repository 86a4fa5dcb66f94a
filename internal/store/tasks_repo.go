package store

import (
	"database/sql"
	"fmt"

	"github.com/luxlabs/lux/internal/models"
	"github.com/luxlabs/lux/internal/timeutil"
)

// TasksRepo is DB-only access for task definitions and occurrences.
//
// Queries stay bounded (date range + hard LIMIT) and occurrence lists that
// need titles use a JOIN instead of per-row task lookups.
type TasksRepo struct {
	db *sql.DB
}

// NewTasksRepo creates a tasks repository over the shared store.
func NewTasksRepo(s *Store) *TasksRepo {
	return &TasksRepo{db: s.db}
}

// --- Definitions ---

// CreateTask inserts a new task definition and returns the generated id.
func (r *TasksRepo) CreateTask(title, notes string, parentTaskID *int64) (int64, error) {
	now := timeutil.Now()
	res, err := r.db.Exec(
		`INSERT INTO task_definitions (title, notes, parent_task_id, archived, created_at, updated_at)
		 VALUES (?, ?, ?, 0, ?, ?)`,
		title, notes, parentTaskID, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task insert id: %w", err)
	}
	return id, nil
}

// GetTask retrieves a definition, or nil when the id is unknown.
func (r *TasksRepo) GetTask(id int64) (*models.TaskDefinition, error) {
	var t models.TaskDefinition
	var parent sql.NullInt64
	var archived int64
	err := r.db.QueryRow(
		`SELECT id, title, notes, parent_task_id, archived, created_at, updated_at
		 FROM task_definitions WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &t.Notes, &parent, &archived, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	if parent.Valid {
		t.ParentTaskID = &parent.Int64
	}
	t.Archived = boolFromInt(archived)
	return &t, nil
}

// ListTasks returns definitions newest-first, bounded by limit.
func (r *TasksRepo) ListTasks(includeArchived bool, limit int) ([]models.TaskDefinition, error) {
	limit = clampLimit(limit)
	query := `SELECT id, title, notes, parent_task_id, archived, created_at, updated_at FROM task_definitions`
	if !includeArchived {
		query += ` WHERE archived = 0`
	}
	query += ` ORDER BY id DESC LIMIT ?`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var out []models.TaskDefinition
	for rows.Next() {
		var t models.TaskDefinition
		var parent sql.NullInt64
		var archived int64
		if err := rows.Scan(&t.ID, &t.Title, &t.Notes, &parent, &archived, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if parent.Valid {
			t.ParentTaskID = &parent.Int64
		}
		t.Archived = boolFromInt(archived)
		out = append(out, t)
	}
	return out, rows.Err()
}

// ArchiveTask flips the definition's soft-delete flag.
func (r *TasksRepo) ArchiveTask(id int64) error {
	_, err := r.db.Exec(
		`UPDATE task_definitions SET archived = 1, updated_at = ? WHERE id = ?`,
		timeutil.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("archive task: %w", err)
	}
	return nil
}

// --- Occurrences ---

// NextSortKeyForDate returns a stable sort key for a new occurrence on a day:
// one past the current maximum, so new rows append after existing ones.
func (r *TasksRepo) NextSortKeyForDate(dueDate string) (int64, error) {
	var maxKey sql.NullInt64
	err := r.db.QueryRow(
		`SELECT MAX(sort_key) FROM task_occurrences WHERE due_date = ?`, dueDate,
	).Scan(&maxKey)
	if err != nil {
		return 0, fmt.Errorf("query max sort key: %w", err)
	}
	return maxKey.Int64 + 1, nil
}

// CreateOccurrence inserts a dated occurrence. A sortKey of 0 or less means
// auto-assign the next key for that day.
func (r *TasksRepo) CreateOccurrence(taskID int64, dueDate, dueTime string, sortKey int64) (int64, error) {
	if sortKey <= 0 {
		var err error
		sortKey, err = r.NextSortKeyForDate(dueDate)
		if err != nil {
			return 0, err
		}
	}

	now := timeutil.Now()
	res, err := r.db.Exec(
		`INSERT INTO task_occurrences (task_id, due_date, due_time, sort_key, archived, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, ?, ?)`,
		taskID, dueDate, nullIfEmpty(dueTime), sortKey, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert occurrence: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("occurrence insert id: %w", err)
	}
	return id, nil
}

// UpdateOccurrenceDueDate moves an occurrence to a new date. The sort key is
// reassigned to the destination day's maximum so the row appends after
// whatever is already there.
func (r *TasksRepo) UpdateOccurrenceDueDate(id int64, targetDate string) error {
	sortKey, err := r.NextSortKeyForDate(targetDate)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`UPDATE task_occurrences SET due_date = ?, sort_key = ?, updated_at = ? WHERE id = ?`,
		targetDate, sortKey, timeutil.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("update occurrence due date: %w", err)
	}
	return nil
}

// GetOccurrence retrieves an occurrence, or nil when the id is unknown.
func (r *TasksRepo) GetOccurrence(id int64) (*models.TaskOccurrence, error) {
	row := r.db.QueryRow(
		`SELECT id, task_id, due_date, due_time, sort_key, completed_at, archived, created_at, updated_at
		 FROM task_occurrences WHERE id = ?`, id,
	)
	o, err := scanOccurrence(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query occurrence: %w", err)
	}
	return o, nil
}

// ListOccurrencesForRange returns occurrences with due_date in
// [startDate, endDate] inclusive, ordered by day, sort key, id.
func (r *TasksRepo) ListOccurrencesForRange(startDate, endDate string, includeArchived bool, limit int) ([]models.TaskOccurrence, error) {
	limit = clampLimit(limit)
	query := `SELECT id, task_id, due_date, due_time, sort_key, completed_at, archived, created_at, updated_at
		 FROM task_occurrences WHERE due_date >= ? AND due_date <= ?`
	if !includeArchived {
		query += ` AND archived = 0`
	}
	query += ` ORDER BY due_date ASC, sort_key ASC, id ASC LIMIT ?`

	rows, err := r.db.Query(query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("query occurrences: %w", err)
	}
	defer rows.Close()

	var out []models.TaskOccurrence
	for rows.Next() {
		o, err := scanOccurrence(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// ListOccurrencesJoinedForRange is ListOccurrencesForRange with the
// definition title and notes joined in.
func (r *TasksRepo) ListOccurrencesJoinedForRange(startDate, endDate string, includeArchived bool, limit int) ([]models.OccurrenceWithTask, error) {
	limit = clampLimit(limit)
	query := `SELECT o.id, o.task_id, d.title, d.notes, o.due_date, o.due_time, o.sort_key, o.completed_at, o.archived, o.created_at, o.updated_at
		 FROM task_occurrences o
		 JOIN task_definitions d ON d.id = o.task_id
		 WHERE o.due_date >= ? AND o.due_date <= ?`
	if !includeArchived {
		query += ` AND o.archived = 0 AND d.archived = 0`
	}
	query += ` ORDER BY o.due_date ASC, o.sort_key ASC, o.id ASC LIMIT ?`

	rows, err := r.db.Query(query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("query joined occurrences: %w", err)
	}
	defer rows.Close()

	var out []models.OccurrenceWithTask
	for rows.Next() {
		var o models.OccurrenceWithTask
		var dueTime, completedAt sql.NullString
		var archived int64
		if err := rows.Scan(&o.ID, &o.TaskID, &o.Title, &o.Notes, &o.DueDate, &dueTime, &o.SortKey, &completedAt, &archived, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan joined occurrence: %w", err)
		}
		o.DueTime = dueTime.String
		o.CompletedAt = completedAt.String
		o.Archived = boolFromInt(archived)
		out = append(out, o)
	}
	return out, rows.Err()
}

// SetOccurrenceCompleted sets or clears the completion timestamp.
func (r *TasksRepo) SetOccurrenceCompleted(id int64, completed bool) error {
	now := timeutil.Now()
	var err error
	if completed {
		_, err = r.db.Exec(
			`UPDATE task_occurrences SET completed_at = ?, updated_at = ? WHERE id = ?`,
			now, now, id,
		)
	} else {
		_, err = r.db.Exec(
			`UPDATE task_occurrences SET completed_at = NULL, updated_at = ? WHERE id = ?`,
			now, id,
		)
	}
	if err != nil {
		return fmt.Errorf("set occurrence completed: %w", err)
	}
	return nil
}

// ArchiveOccurrence flips the occurrence's soft-delete flag.
func (r *TasksRepo) ArchiveOccurrence(id int64) error {
	_, err := r.db.Exec(
		`UPDATE task_occurrences SET archived = 1, updated_at = ? WHERE id = ?`,
		timeutil.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("archive occurrence: %w", err)
	}
	return nil
}

func scanOccurrence(scan func(dest ...any) error) (*models.TaskOccurrence, error) {
	var o models.TaskOccurrence
	var dueTime, completedAt sql.NullString
	var archived int64
	err := scan(&o.ID, &o.TaskID, &o.DueDate, &dueTime, &o.SortKey, &completedAt, &archived, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	o.DueTime = dueTime.String
	o.CompletedAt = completedAt.String
	o.Archived = boolFromInt(archived)
	return &o, nil
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > 2000 {
		return 2000
	}
	return limit
}

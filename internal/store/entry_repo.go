package store

import (
	"database/sql"
	"fmt"

	"github.com/luxlabs/lux/internal/models"
	"github.com/luxlabs/lux/internal/timeutil"
)

// EntryRepo is DB-only access for scheduled_entries. Validation lives in the
// scheduler service; this layer executes statements and maps rows.
type EntryRepo struct {
	db *sql.DB
}

// NewEntryRepo creates an entry repository over the shared store.
func NewEntryRepo(s *Store) *EntryRepo {
	return &EntryRepo{db: s.db}
}

// Create inserts a new scheduled entry and returns the generated id.
// Bounds must already be in canonical form.
func (r *EntryRepo) Create(itemKind, itemRef, startDT, endDT, titleCache, notesCache string) (int64, error) {
	now := timeutil.Now()
	res, err := r.db.Exec(
		`INSERT INTO scheduled_entries (item_kind, item_ref, start_dt, end_dt, title_cache, notes_cache, archived, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)`,
		itemKind, itemRef, startDT, endDT, nullIfEmpty(titleCache), nullIfEmpty(notesCache), now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("entry insert id: %w", err)
	}
	return id, nil
}

// UpdateTime replaces only the interval bounds, refreshing updated_at.
func (r *EntryRepo) UpdateTime(id int64, newStart, newEnd string) error {
	_, err := r.db.Exec(
		`UPDATE scheduled_entries SET start_dt = ?, end_dt = ?, updated_at = ? WHERE id = ?`,
		newStart, newEnd, timeutil.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("update entry time: %w", err)
	}
	return nil
}

// Archive flips the soft-delete flag. Rows are never physically removed.
func (r *EntryRepo) Archive(id int64) error {
	_, err := r.db.Exec(
		`UPDATE scheduled_entries SET archived = 1, updated_at = ? WHERE id = ?`,
		timeutil.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("archive entry: %w", err)
	}
	return nil
}

// Get retrieves a single entry, or nil when the id is unknown.
func (r *EntryRepo) Get(id int64) (*models.ScheduledEntry, error) {
	row := r.db.QueryRow(
		`SELECT id, item_kind, item_ref, start_dt, end_dt, title_cache, notes_cache, archived, created_at, updated_at
		 FROM scheduled_entries WHERE id = ?`, id,
	)
	e, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query entry: %w", err)
	}
	return e, nil
}

// ListForRange returns entries whose interval strictly overlaps
// [startDT, endDT): start_dt < endDT AND end_dt > startDT. Entries that only
// touch a boundary are excluded (see timeutil.Overlaps). Ordered by start_dt
// ascending and bounded by limit.
func (r *EntryRepo) ListForRange(startDT, endDT string, includeArchived bool, limit int) ([]models.ScheduledEntry, error) {
	query := `SELECT id, item_kind, item_ref, start_dt, end_dt, title_cache, notes_cache, archived, created_at, updated_at
		 FROM scheduled_entries WHERE start_dt < ? AND end_dt > ?`
	if !includeArchived {
		query += ` AND archived = 0`
	}
	query += ` ORDER BY start_dt ASC LIMIT ?`

	rows, err := r.db.Query(query, endDT, startDT, limit)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var out []models.ScheduledEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func scanEntry(scan func(dest ...any) error) (*models.ScheduledEntry, error) {
	var e models.ScheduledEntry
	var title, notes sql.NullString
	var archived int64
	err := scan(&e.ID, &e.ItemKind, &e.ItemRef, &e.StartDT, &e.EndDT, &title, &notes, &archived, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.TitleCache = title.String
	e.NotesCache = notes.String
	e.Archived = boolFromInt(archived)
	return &e, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

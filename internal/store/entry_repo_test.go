package store

import "testing"

func TestEntryCreateAndGet(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	r := NewEntryRepo(s)

	id, err := r.Create("adhoc", "ref-1", "2026-01-01 09:00:00", "2026-01-01 09:30:00", "Standup", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Expected positive id, got %d", id)
	}

	e, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e == nil {
		t.Fatal("Expected entry, got nil")
	}
	if e.ItemKind != "adhoc" || e.ItemRef != "ref-1" {
		t.Errorf("Unexpected kind/ref: %s/%s", e.ItemKind, e.ItemRef)
	}
	if e.StartDT != "2026-01-01 09:00:00" || e.EndDT != "2026-01-01 09:30:00" {
		t.Errorf("Unexpected bounds: %s - %s", e.StartDT, e.EndDT)
	}
	if e.TitleCache != "Standup" {
		t.Errorf("Expected title cache Standup, got %q", e.TitleCache)
	}
	if e.NotesCache != "" {
		t.Errorf("Expected empty notes cache, got %q", e.NotesCache)
	}
	if e.Archived {
		t.Error("New entry should not be archived")
	}
	if e.CreatedAt == "" || e.UpdatedAt == "" {
		t.Error("Timestamps should be set on create")
	}
}

func TestEntryGetUnknown(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	r := NewEntryRepo(s)

	e, err := r.Get(9999)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if e != nil {
		t.Error("Expected nil for unknown id")
	}
}

func TestEntryUpdateTime(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	r := NewEntryRepo(s)

	id, _ := r.Create("adhoc", "ref-1", "2026-01-01 09:00:00", "2026-01-01 10:00:00", "Focus", "")

	if err := r.UpdateTime(id, "2026-01-01 11:00:00", "2026-01-01 12:00:00"); err != nil {
		t.Fatalf("UpdateTime failed: %v", err)
	}

	e, _ := r.Get(id)
	if e.StartDT != "2026-01-01 11:00:00" || e.EndDT != "2026-01-01 12:00:00" {
		t.Errorf("Bounds not updated: %s - %s", e.StartDT, e.EndDT)
	}
	// Other columns are untouched.
	if e.TitleCache != "Focus" {
		t.Errorf("Title cache changed: %q", e.TitleCache)
	}
}

func TestEntryArchive(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	r := NewEntryRepo(s)

	id, _ := r.Create("adhoc", "ref-1", "2026-01-01 09:00:00", "2026-01-01 10:00:00", "", "")

	if err := r.Archive(id); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	e, _ := r.Get(id)
	if !e.Archived {
		t.Error("Entry should be archived")
	}

	// Archiving twice is not an error and stays archived.
	if err := r.Archive(id); err != nil {
		t.Fatalf("Second archive failed: %v", err)
	}
	e, _ = r.Get(id)
	if !e.Archived {
		t.Error("Entry should remain archived")
	}
}

func TestEntryListForRangeOverlap(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	r := NewEntryRepo(s)

	// Inside the queried day.
	inside, _ := r.Create("adhoc", "a", "2026-01-01 09:00:00", "2026-01-01 09:30:00", "", "")
	// Ends exactly at the query start: zero-width adjacency, excluded.
	r.Create("adhoc", "b", "2025-12-31 23:00:00", "2026-01-01 00:00:00", "", "")
	// Starts exactly at the query end: excluded.
	r.Create("adhoc", "c", "2026-01-02 00:00:00", "2026-01-02 01:00:00", "", "")
	// Spans midnight into the day: included.
	spanning, _ := r.Create("adhoc", "d", "2025-12-31 23:00:00", "2026-01-01 01:00:00", "", "")

	entries, err := r.ListForRange("2026-01-01 00:00:00", "2026-01-02 00:00:00", false, 500)
	if err != nil {
		t.Fatalf("ListForRange failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	// Ordered by start_dt ascending.
	if entries[0].ID != spanning || entries[1].ID != inside {
		t.Errorf("Unexpected order: %d, %d", entries[0].ID, entries[1].ID)
	}
}

func TestEntryListForRangeArchivedFilter(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	r := NewEntryRepo(s)

	id, _ := r.Create("adhoc", "a", "2026-01-01 09:00:00", "2026-01-01 10:00:00", "", "")
	r.Archive(id)

	entries, err := r.ListForRange("2026-01-01 00:00:00", "2026-01-02 00:00:00", false, 500)
	if err != nil {
		t.Fatalf("ListForRange failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected archived entry to be excluded, got %d rows", len(entries))
	}

	entries, err = r.ListForRange("2026-01-01 00:00:00", "2026-01-02 00:00:00", true, 500)
	if err != nil {
		t.Fatalf("ListForRange failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry with includeArchived, got %d", len(entries))
	}
	if !entries[0].Archived {
		t.Error("Entry should report archived = true")
	}
}

func TestEntryListForRangeLimit(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	r := NewEntryRepo(s)

	for i := 0; i < 5; i++ {
		r.Create("adhoc", "a", "2026-01-01 09:00:00", "2026-01-01 10:00:00", "", "")
	}

	entries, err := r.ListForRange("2026-01-01 00:00:00", "2026-01-02 00:00:00", false, 3)
	if err != nil {
		t.Fatalf("ListForRange failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("Expected limit of 3 rows, got %d", len(entries))
	}
}

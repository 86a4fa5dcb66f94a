package todo

import (
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/luxlabs/lux/internal/store"
	"github.com/luxlabs/lux/internal/timeutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewService(store.NewTasksRepo(s))
}

func TestAddTaskAndListToday(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.AddTask("Buy milk", "oat", "", "09:00")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("Expected positive occurrence id, got %d", id)
	}

	occs, err := svc.ListToday()
	if err != nil {
		t.Fatalf("ListToday failed: %v", err)
	}
	if len(occs) != 1 {
		t.Fatalf("Expected 1 occurrence, got %d", len(occs))
	}
	if occs[0].Title != "Buy milk" || occs[0].Notes != "oat" {
		t.Errorf("Unexpected joined fields: %+v", occs[0])
	}
	if occs[0].DueTime != "09:00" {
		t.Errorf("Expected due time 09:00, got %q", occs[0].DueTime)
	}
}

func TestAddTaskRejectsBlankTitle(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.AddTask("   ", "", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank title, got %v", err)
	}
	if _, err := svc.AddTask("ok", "", "not-a-date", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for bad date, got %v", err)
	}
	if _, err := svc.AddTask("ok", "", "", "25:99"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for bad time, got %v", err)
	}
}

func TestListUpcomingWindow(t *testing.T) {
	svc := newTestService(t)

	today := timeutil.Today()
	inWindow, _ := timeutil.AddDays(today, 2)
	outside, _ := timeutil.AddDays(today, 10)

	svc.AddTask("today", "", today, "")
	svc.AddTask("soon", "", inWindow, "")
	svc.AddTask("later", "", outside, "")

	occs, err := svc.ListUpcoming(7)
	if err != nil {
		t.Fatalf("ListUpcoming failed: %v", err)
	}
	if len(occs) != 2 {
		t.Fatalf("Expected 2 occurrences in window, got %d", len(occs))
	}

	// Clamped to a single day.
	occs, _ = svc.ListUpcoming(0)
	if len(occs) != 1 {
		t.Errorf("Expected only today's occurrence for days=0, got %d", len(occs))
	}
}

func TestSetCompletedAndMove(t *testing.T) {
	svc := newTestService(t)

	today := timeutil.Today()
	tomorrow, _ := timeutil.AddDays(today, 1)

	id, _ := svc.AddTask("Stretch", "", today, "")

	if err := svc.SetCompleted(id, true); err != nil {
		t.Fatalf("SetCompleted failed: %v", err)
	}
	occs, _ := svc.ListToday()
	if !occs[0].Completed() {
		t.Error("Occurrence should be completed")
	}

	if err := svc.Move(id, tomorrow); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	occs, _ = svc.ListToday()
	if len(occs) != 0 {
		t.Errorf("Moved occurrence should leave today, got %d rows", len(occs))
	}
	occs, _ = svc.ListDate(tomorrow)
	if len(occs) != 1 {
		t.Errorf("Expected occurrence on target day, got %d", len(occs))
	}

	if err := svc.Move(id, "garbage"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for bad target date, got %v", err)
	}
}

func TestArchiveOccurrence(t *testing.T) {
	svc := newTestService(t)

	id, _ := svc.AddTask("Old", "", timeutil.Today(), "")
	if err := svc.Archive(id); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	occs, _ := svc.ListToday()
	if len(occs) != 0 {
		t.Errorf("Archived occurrence should be hidden, got %d rows", len(occs))
	}
}

func TestProviderResolvesTitle(t *testing.T) {
	svc := newTestService(t)
	p := NewProvider(svc)

	id, _ := svc.AddTask("Water plants", "", timeutil.Today(), "")

	label, err := p.ResolveLabel(strconv.FormatInt(id, 10))
	if err != nil {
		t.Fatalf("ResolveLabel failed: %v", err)
	}
	if label != "Water plants" {
		t.Errorf("Expected task title, got %q", label)
	}

	if _, err := p.ResolveLabel("999"); err == nil {
		t.Error("Expected error for unknown occurrence")
	}
	if _, err := p.ResolveLabel("not-a-number"); err == nil {
		t.Error("Expected error for malformed ref")
	}
}

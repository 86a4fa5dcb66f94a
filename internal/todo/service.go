// Package todo manages task definitions and their dated occurrences.
package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luxlabs/lux/internal/models"
	"github.com/luxlabs/lux/internal/store"
	"github.com/luxlabs/lux/internal/timeutil"
)

// ItemKind is the label-provider kind todo registers with the scheduler.
const ItemKind = "task_occurrence"

// maxUpcomingDays caps the upcoming window so list queries stay bounded.
const maxUpcomingDays = 31

// ErrInvalidInput marks validation failures on todo operations.
var ErrInvalidInput = errors.New("invalid input")

// Service wraps the tasks repository with validation and day math.
type Service struct {
	repo *store.TasksRepo
}

// NewService creates a todo service over the tasks repository.
func NewService(repo *store.TasksRepo) *Service {
	return &Service{repo: repo}
}

// AddTask creates a definition and an occurrence on the given date in one
// step. An empty date means today; the due time is optional.
func (s *Service) AddTask(title, notes, dueDate, dueTime string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return 0, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	date := timeutil.Today()
	if strings.TrimSpace(dueDate) != "" {
		var err error
		date, err = timeutil.NormalizeDate(dueDate)
		if err != nil {
			return 0, fmt.Errorf("%w: due date: %v", ErrInvalidInput, err)
		}
	}
	clock, err := timeutil.NormalizeClock(dueTime)
	if err != nil {
		return 0, fmt.Errorf("%w: due time: %v", ErrInvalidInput, err)
	}

	taskID, err := s.repo.CreateTask(title, strings.TrimSpace(notes), nil)
	if err != nil {
		return 0, fmt.Errorf("add task: %w", err)
	}
	occID, err := s.repo.CreateOccurrence(taskID, date, clock, 0)
	if err != nil {
		return 0, fmt.Errorf("add task occurrence: %w", err)
	}
	return occID, nil
}

// ListToday returns today's occurrences with their task fields joined in.
func (s *Service) ListToday() ([]models.OccurrenceWithTask, error) {
	today := timeutil.Today()
	return s.listJoined(today, today)
}

// ListUpcoming returns occurrences from today through today+days-1. The
// window is clamped to [1, 31] days.
func (s *Service) ListUpcoming(days int) ([]models.OccurrenceWithTask, error) {
	if days < 1 {
		days = 1
	}
	if days > maxUpcomingDays {
		days = maxUpcomingDays
	}
	today := timeutil.Today()
	end, err := timeutil.AddDays(today, days-1)
	if err != nil {
		return nil, fmt.Errorf("upcoming window: %w", err)
	}
	return s.listJoined(today, end)
}

// ListDate returns occurrences due on a single date.
func (s *Service) ListDate(date string) ([]models.OccurrenceWithTask, error) {
	d, err := timeutil.NormalizeDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	return s.listJoined(d, d)
}

func (s *Service) listJoined(startDate, endDate string) ([]models.OccurrenceWithTask, error) {
	occs, err := s.repo.ListOccurrencesJoinedForRange(startDate, endDate, false, 500)
	if err != nil {
		return nil, fmt.Errorf("list occurrences: %w", err)
	}
	return occs, nil
}

// SetCompleted marks or clears completion on an occurrence.
func (s *Service) SetCompleted(occurrenceID int64, completed bool) error {
	if occurrenceID <= 0 {
		return fmt.Errorf("%w: occurrence id is required", ErrInvalidInput)
	}
	if err := s.repo.SetOccurrenceCompleted(occurrenceID, completed); err != nil {
		return fmt.Errorf("set completed: %w", err)
	}
	return nil
}

// Move reassigns an occurrence to a new date. It lands after whatever is
// already scheduled on the target day.
func (s *Service) Move(occurrenceID int64, targetDate string) error {
	if occurrenceID <= 0 {
		return fmt.Errorf("%w: occurrence id is required", ErrInvalidInput)
	}
	date, err := timeutil.NormalizeDate(targetDate)
	if err != nil {
		return fmt.Errorf("%w: target date: %v", ErrInvalidInput, err)
	}
	if err := s.repo.UpdateOccurrenceDueDate(occurrenceID, date); err != nil {
		return fmt.Errorf("move occurrence: %w", err)
	}
	return nil
}

// Archive soft-deletes an occurrence. The definition survives so other
// occurrences keep their title.
func (s *Service) Archive(occurrenceID int64) error {
	if occurrenceID <= 0 {
		return fmt.Errorf("%w: occurrence id is required", ErrInvalidInput)
	}
	if err := s.repo.ArchiveOccurrence(occurrenceID); err != nil {
		return fmt.Errorf("archive occurrence: %w", err)
	}
	return nil
}

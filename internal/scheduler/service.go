package scheduler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luxlabs/lux/internal/models"
	"github.com/luxlabs/lux/internal/store"
	"github.com/luxlabs/lux/internal/timeutil"
)

// FallbackTitle is shown when neither a provider nor the cached title can
// produce a label for an entry.
const FallbackTitle = "Scheduled Item"

// DefaultListLimit bounds range queries that don't pass their own limit.
const DefaultListLimit = 500

// ErrInvalidInput marks validation failures on scheduler writes and queries.
// Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Service is the scheduler write path and query surface. All input
// validation happens here; the repository below it trusts its arguments.
type Service struct {
	repo     *store.EntryRepo
	registry *Registry
}

// NewService creates a scheduler service. A nil registry gets replaced with
// an empty one so ResolveTitle always has something to consult.
func NewService(repo *store.EntryRepo, registry *Registry) *Service {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Service{repo: repo, registry: registry}
}

// Registry exposes the provider registry so features can register label
// providers at composition time.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Schedule validates and creates a new entry, returning its id. Nothing is
// written when validation fails.
func (s *Service) Schedule(itemKind, itemRef, startDT, endDT, titleCache, notesCache string) (int64, error) {
	kind := strings.TrimSpace(itemKind)
	if kind == "" {
		return 0, fmt.Errorf("%w: item kind is required", ErrInvalidInput)
	}
	ref := strings.TrimSpace(itemRef)
	if ref == "" {
		return 0, fmt.Errorf("%w: item ref is required", ErrInvalidInput)
	}

	start, err := timeutil.NormalizeDateTime(startDT)
	if err != nil {
		return 0, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	end, err := timeutil.NormalizeDateTime(endDT)
	if err != nil {
		return 0, fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
	}
	if start >= end {
		return 0, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	id, err := s.repo.Create(kind, ref, start, end, titleCache, notesCache)
	if err != nil {
		return 0, fmt.Errorf("schedule entry: %w", err)
	}
	return id, nil
}

// Reschedule moves an existing entry to a new time range. Only the bounds
// change; title and notes caches are left alone.
func (s *Service) Reschedule(id int64, newStartDT, newEndDT string) error {
	if id <= 0 {
		return fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}

	start, err := timeutil.NormalizeDateTime(newStartDT)
	if err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	end, err := timeutil.NormalizeDateTime(newEndDT)
	if err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
	}
	if start >= end {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	if err := s.repo.UpdateTime(id, start, end); err != nil {
		return fmt.Errorf("reschedule entry: %w", err)
	}
	return nil
}

// Archive soft-deletes an entry. Archiving an already-archived entry is a
// no-op, not an error.
func (s *Service) Archive(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}
	if err := s.repo.Archive(id); err != nil {
		return fmt.Errorf("archive entry: %w", err)
	}
	return nil
}

// Entry retrieves a single entry, or nil when the id is unknown.
func (s *Service) Entry(id int64) (*models.ScheduledEntry, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: entry id is required", ErrInvalidInput)
	}
	return s.repo.Get(id)
}

// ListRange returns entries overlapping [startDT, endDT), ordered by start
// time. The range is half-open: entries that only touch a bound are
// excluded. An equal start and end is a valid empty window.
func (s *Service) ListRange(startDT, endDT string, includeArchived bool, limit int) ([]models.ScheduledEntry, error) {
	start, err := timeutil.NormalizeDateTime(startDT)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidInput, err)
	}
	end, err := timeutil.NormalizeDateTime(endDT)
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidInput, err)
	}
	if start > end {
		return nil, fmt.Errorf("%w: end must not precede start", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	entries, err := s.repo.ListForRange(start, end, includeArchived, limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListDay returns entries overlapping the given calendar day.
func (s *Service) ListDay(date string, includeArchived bool) ([]models.ScheduledEntry, error) {
	start, end, err := timeutil.DayBounds(date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	return s.ListRange(start, end, includeArchived, 0)
}

// ResolveTitle returns the display title for an entry. Adhoc entries own
// their title outright; for provider-backed kinds the chain is provider,
// then cached title, then the fixed fallback. Provider failures degrade
// silently to the next tier.
func (s *Service) ResolveTitle(itemKind, itemRef, titleCache string) string {
	kind := strings.TrimSpace(itemKind)

	if kind != models.ItemKindAdhoc {
		if provider, ok := s.registry.Get(kind); ok {
			label, err := provider.ResolveLabel(itemRef)
			if err == nil && strings.TrimSpace(label) != "" {
				return label
			}
		}
	}
	if strings.TrimSpace(titleCache) != "" {
		return titleCache
	}
	return FallbackTitle
}

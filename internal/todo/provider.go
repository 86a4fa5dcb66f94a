package todo

import (
	"fmt"
	"strconv"
	"strings"
)

// Provider resolves scheduler labels for task-occurrence entries. The item
// ref is the occurrence id in decimal form.
type Provider struct {
	svc *Service
}

// NewProvider wraps the todo service as a scheduler label provider.
func NewProvider(svc *Service) *Provider {
	return &Provider{svc: svc}
}

// ResolveLabel looks up the occurrence's task title. Unknown or malformed
// refs return an error so the scheduler falls back to its cached title.
func (p *Provider) ResolveLabel(itemRef string) (string, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(itemRef), 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse occurrence ref %q: %w", itemRef, err)
	}
	occ, err := p.svc.repo.GetOccurrence(id)
	if err != nil {
		return "", err
	}
	if occ == nil {
		return "", fmt.Errorf("occurrence %d not found", id)
	}
	task, err := p.svc.repo.GetTask(occ.TaskID)
	if err != nil {
		return "", err
	}
	if task == nil {
		return "", fmt.Errorf("task %d not found", occ.TaskID)
	}
	return task.Title, nil
}

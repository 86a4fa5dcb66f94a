package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/luxlabs/lux/internal/scheduler"
	"github.com/luxlabs/lux/internal/todo"
)

func TestLogFailureRecordsStorageErrors(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	want := errors.New("database is locked")
	if got := logFailure(log, want); got != want {
		t.Fatalf("logFailure returned %v, want %v", got, want)
	}
	if !strings.Contains(buf.String(), "command failed") {
		t.Errorf("storage error not logged: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "database is locked") {
		t.Errorf("log line missing error detail: %q", buf.String())
	}
}

func TestLogFailureSkipsValidationErrors(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	for _, err := range []error{
		fmt.Errorf("%w: start must come before end", scheduler.ErrInvalidInput),
		fmt.Errorf("%w: title is required", todo.ErrInvalidInput),
		nil,
	} {
		if got := logFailure(log, err); !errors.Is(got, err) {
			t.Fatalf("logFailure returned %v, want %v", got, err)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("validation errors should not be logged, got %q", buf.String())
	}
}

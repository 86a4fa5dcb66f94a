package app

import (
	"testing"

	"github.com/luxlabs/lux/internal/todo"
)

func TestNewAtWiresServices(t *testing.T) {
	a, err := NewAt(t.TempDir())
	if err != nil {
		t.Fatalf("NewAt failed: %v", err)
	}
	defer a.Close()

	if a.Scheduler == nil || a.Todo == nil || a.Settings == nil {
		t.Fatal("Services not wired")
	}
	if a.Session == "" {
		t.Error("Session id not assigned")
	}

	// The todo provider is registered with the scheduler.
	if _, ok := a.Scheduler.Registry().Get(todo.ItemKind); !ok {
		t.Errorf("Expected provider for kind %q", todo.ItemKind)
	}
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("LUX_DATA_DIR", "/tmp/lux-test-data")

	dir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir failed: %v", err)
	}
	if dir != "/tmp/lux-test-data" {
		t.Errorf("Expected override dir, got %q", dir)
	}
}

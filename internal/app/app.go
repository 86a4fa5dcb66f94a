// Package app wires the store, services, and providers into one runtime.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/luxlabs/lux/internal/payload"
	"github.com/luxlabs/lux/internal/scheduler"
	"github.com/luxlabs/lux/internal/settings"
	"github.com/luxlabs/lux/internal/store"
	"github.com/luxlabs/lux/internal/todo"
)

const dbFileName = "lux.db"

// App owns the shared store and the services built over it. One App exists
// per process; the CLI and TUI both run through it.
type App struct {
	Store     *store.Store
	Scheduler *scheduler.Service
	Todo      *todo.Service
	Settings  *settings.Store
	Session   string
	Log       zerolog.Logger
}

// DataDir resolves where Lux keeps its database and settings. LUX_DATA_DIR
// overrides the platform config directory.
func DataDir() (string, error) {
	if dir := os.Getenv("LUX_DATA_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, "lux"), nil
}

// New opens the store and builds the service graph. Feature label providers
// are registered here so the scheduler stays feature-agnostic.
func New() (*App, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return NewAt(dir)
}

// NewAt is New rooted at an explicit data directory.
func NewAt(dataDir string) (*App, error) {
	log := newLogger()

	s, err := store.Open(filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	schedSvc := scheduler.NewService(store.NewEntryRepo(s), scheduler.NewRegistry())
	todoSvc := todo.NewService(store.NewTasksRepo(s))
	schedSvc.Registry().Register(todo.ItemKind, todo.NewProvider(todoSvc))

	log.Debug().Str("data_dir", dataDir).Msg("app initialized")

	return &App{
		Store:     s,
		Scheduler: schedSvc,
		Todo:      todoSvc,
		Settings:  settings.NewStore(dataDir, log),
		Session:   payload.NewSessionID(),
		Log:       log,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// newLogger builds the process logger. Logs go to stderr so they never mix
// with command output; LUX_DEBUG=1 raises the level, LUX_LOG=json switches
// off the console writer.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if debug, _ := strconv.ParseBool(os.Getenv("LUX_DEBUG")); debug {
		level = zerolog.DebugLevel
	}

	var log zerolog.Logger
	if os.Getenv("LUX_LOG") == "json" {
		log = zerolog.New(os.Stderr)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return log.Level(level).With().Timestamp().Logger()
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/todo/internal/csvstore"
	"github.com/mesh-intelligence/todo/internal/options"
	"github.com/mesh-intelligence/todo/internal/sqlite"
	"github.com/mesh-intelligence/todo/internal/tracker"
	"github.com/mesh-intelligence/todo/internal/view"
	"github.com/mesh-intelligence/todo/pkg/types"
)

// newStore returns the Store for the configured backend.
func newStore(backend string) (types.Store, error) {
	switch strings.ToLower(backend) {
	case types.BackendCSV:
		return csvstore.New(), nil
	case types.BackendSQLite:
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}

// invoke runs one pass: parse, load, mutate, save, display. The store is
// written only after every mutation has succeeded.
func invoke(out io.Writer, logger *log.Logger, cfg types.Config, args []string) error {
	parsed, err := options.Parse(args, options.DefaultRegistry())
	if err != nil {
		return err
	}
	if len(parsed.Dropped) > 0 {
		logger.Warn("ignoring values not attached to an option", "values", parsed.Dropped)
	}

	store, err := newStore(cfg.Backend)
	if err != nil {
		return err
	}

	list, err := store.Load(parsed.CSVPath)
	if err != nil {
		return fmt.Errorf("load todos: %w", err)
	}
	logger.Debug("loaded todos", "path", parsed.CSVPath, "backend", cfg.Backend, "count", list.Len())

	res, err := tracker.Apply(list, parsed)
	if err != nil {
		return err
	}
	if res.Added != nil {
		logger.Info("added todo", "id", res.Added.ID, "text", res.Added.Text)
	}
	for _, id := range res.Completed {
		logger.Info("completed todo", "id", id)
	}

	if err := store.Save(parsed.CSVPath, list); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	logger.Debug("saved todos", "path", parsed.CSVPath, "count", list.Len())

	if !parsed.Has(options.Display) {
		return nil
	}
	selected := view.Select(list.Todos(), parsed)
	logger.Debug("displaying todos", "stages", len(view.Stages(parsed)), "count", len(selected))
	return view.Render(out, selected, cfg.Output)
}

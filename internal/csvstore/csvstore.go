// Package csvstore persists a TodoList as a quoted, comma-delimited file.
//
// The first line is the header
//
//	"id","text","completed","due","priority","category"
//
// and every following line holds one todo with each field double-quoted.
// Unset optional fields are written as "?". Dates are MM/DD/YYYY.
// Rows ending in a trailing comma, as older writers produced, are also read.
package csvstore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// ErrUnstorableValue is returned, wrapped in types.ErrStorage, when a todo's
// text or category cannot be written in a form Load reads back unchanged:
// a line break, the value "?", or a value that splits into extra fields.
var ErrUnstorableValue = errors.New("value cannot be stored in the todo file")

// Columns in file order.
var Columns = []string{"id", "text", "completed", "due", "priority", "category"}

const (
	quote     = `"`
	separator = `","`
	noValue   = "?"
	legacyEnd = `",`

	colText      = 1
	colCompleted = 2
	colDue       = 3
	colPriority  = 4
	colCategory  = 5

	maxLineSize = 1 << 20
)

// Store implements types.Store over the delimited file format.
type Store struct{}

// New returns a CSV store.
func New() *Store { return &Store{} }

// Load reads the file at path. The header row and blank lines are skipped.
// A row with the wrong number of fields, or with values that fail todo
// validation, is reported with its line number.
func (s *Store) Load(path string) (*types.TodoList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", types.ErrStorage, path, err)
	}
	defer f.Close()

	var todos []*types.Todo
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	header := true
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header {
			header = false
			continue
		}
		todo, err := parseRow(splitRow(line))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", types.ErrStorage, path, lineNo, err)
		}
		todos = append(todos, todo)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanning %s: %w", types.ErrStorage, path, err)
	}
	return types.NewTodoList(todos), nil
}

// Save writes list to path atomically: a temp file in the same directory is
// written, synced, and renamed over path. Every row is checked before the
// temp file is created, so an unstorable todo leaves path untouched.
func (s *Store) Save(path string, list *types.TodoList) error {
	rows := make([]string, 0, list.Len())
	for i, t := range list.Todos() {
		row, err := formatRow(i+1, t)
		if err != nil {
			return fmt.Errorf("%w: %s todo %d: %w", types.ErrStorage, path, i+1, err)
		}
		rows = append(rows, row)
	}
	if err := writeAtomic(path, rows); err != nil {
		return fmt.Errorf("%w: writing %s: %w", types.ErrStorage, path, err)
	}
	return nil
}

// splitRow splits a line into fields. Fields equal to "?" become empty.
func splitRow(line string) []string {
	fields := splitFields(line)
	for i, f := range fields {
		if f == noValue {
			fields[i] = ""
		}
	}
	return fields
}

// splitFields strips the outer quotes of a line, or the legacy `",` ending,
// and splits it on the quoted separator.
func splitFields(line string) []string {
	line = strings.TrimPrefix(line, quote)
	if strings.HasSuffix(line, legacyEnd) {
		line = strings.TrimSuffix(line, legacyEnd)
	} else {
		line = strings.TrimSuffix(line, quote)
	}
	return strings.Split(line, separator)
}

func parseRow(fields []string) (*types.Todo, error) {
	if len(fields) != len(Columns) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(Columns), len(fields))
	}
	return types.NewTodoBuilder(fields[colText]).
		Completed(strings.EqualFold(fields[colCompleted], "true")).
		Due(fields[colDue]).
		Priority(fields[colPriority]).
		Category(fields[colCategory]).
		Build()
}

// formatRow renders one todo. id is the todo's position in the list.
// Returns ErrUnstorableValue when the row would not read back as written.
func formatRow(id int, t *types.Todo) (string, error) {
	if err := checkValue("text", t.Text); err != nil {
		return "", err
	}
	if err := checkValue("category", t.Category); err != nil {
		return "", err
	}

	fields := []string{
		strconv.Itoa(id),
		t.Text,
		strconv.FormatBool(t.Completed),
		noValue,
		noValue,
		noValue,
	}
	if t.HasDue() {
		fields[colDue] = types.FormatDue(t.Due)
	}
	if t.HasPriority() {
		fields[colPriority] = strconv.Itoa(t.Priority)
	}
	if t.HasCategory() {
		fields[colCategory] = t.Category
	}
	row := quote + strings.Join(fields, separator) + quote
	if !slices.Equal(splitFields(row), fields) {
		return "", fmt.Errorf("%w: text %q or category %q contains a field separator", ErrUnstorableValue, t.Text, t.Category)
	}
	return row, nil
}

func checkValue(name, v string) error {
	if strings.ContainsAny(v, "\r\n") {
		return fmt.Errorf("%w: %s contains a line break", ErrUnstorableValue, name)
	}
	if v == noValue {
		return fmt.Errorf("%w: %s is %q", ErrUnstorableValue, name, noValue)
	}
	return nil
}

func headerRow() string {
	return quote + strings.Join(Columns, separator) + quote
}

func writeAtomic(path string, rows []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".todos-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	// Keep the permissions of the file being replaced.
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(fmt.Errorf("setting mode: %w", err))
	}

	w := bufio.NewWriter(tmp)
	if _, err := fmt.Fprintln(w, headerRow()); err != nil {
		return fail(fmt.Errorf("writing header: %w", err))
	}
	for i, row := range rows {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fail(fmt.Errorf("writing row %d: %w", i+1, err))
		}
	}
	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("flushing buffer: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("syncing temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

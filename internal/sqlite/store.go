// Package sqlite implements a types.Store backed by a SQLite database file.
// The database holds a single todos table; Save replaces its rows inside one
// transaction.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// Store implements types.Store over SQLite.
type Store struct{}

// New returns a SQLite store.
func New() *Store { return &Store{} }

// open opens the database at path and ensures the schema exists. When
// mustExist is set a missing file is an error instead of being created.
func open(path string, mustExist bool) (*sql.DB, error) {
	if mustExist {
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(createTodos); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return db, nil
}

// Load reads every row in position order.
func (s *Store) Load(path string) (*types.TodoList, error) {
	db, err := open(path, true)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", types.ErrStorage, path, err)
	}
	defer db.Close()

	todos, err := queryTodos(db)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", types.ErrStorage, path, err)
	}
	return types.NewTodoList(todos), nil
}

func queryTodos(db *sql.DB) ([]*types.Todo, error) {
	rows, err := db.Query(selectTodos)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []*types.Todo
	for rows.Next() {
		var (
			text      string
			completed bool
			due       sql.NullString
			priority  sql.NullInt64
			category  sql.NullString
		)
		if err := rows.Scan(&text, &completed, &due, &priority, &category); err != nil {
			return nil, err
		}
		b := types.NewTodoBuilder(text).
			Completed(completed).
			Due(due.String).
			Category(category.String)
		if priority.Valid {
			b.Priority(fmt.Sprint(priority.Int64))
		}
		todo, err := b.Build()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(todos)+1, err)
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// Save replaces every row with the contents of list. The database file is
// created if it does not exist.
func (s *Store) Save(path string, list *types.TodoList) error {
	db, err := open(path, false)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", types.ErrStorage, path, err)
	}
	defer db.Close()

	if err := replaceTodos(db, list); err != nil {
		return fmt.Errorf("%w: writing %s: %w", types.ErrStorage, path, err)
	}
	return nil
}

func replaceTodos(db *sql.DB, list *types.TodoList) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	if _, err := tx.Exec(deleteTodos); err != nil {
		return fmt.Errorf("clearing todos: %w", err)
	}

	stmt, err := tx.Prepare(insertTodo)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range list.Todos() {
		if _, err := stmt.Exec(i+1, t.Text, t.Completed, nullDue(t), nullPriority(t), nullCategory(t)); err != nil {
			return fmt.Errorf("inserting todo %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

func nullDue(t *types.Todo) sql.NullString {
	if !t.HasDue() {
		return sql.NullString{}
	}
	return sql.NullString{String: types.FormatDue(t.Due), Valid: true}
}

func nullPriority(t *types.Todo) sql.NullInt64 {
	if !t.HasPriority() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(t.Priority), Valid: true}
}

func nullCategory(t *types.Todo) sql.NullString {
	if !t.HasCategory() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Category, Valid: true}
}

// Package tracker applies the mutations requested on the command line to a
// TodoList.
package tracker

import (
	"fmt"
	"strconv"

	"github.com/mesh-intelligence/todo/internal/options"
	"github.com/mesh-intelligence/todo/pkg/types"
)

// Result records what Apply changed.
type Result struct {
	Added     *types.Todo // nil when --add-todo was not given
	Completed []int       // ids marked complete, in the order applied
}

// Changed reports whether the list needs to be written back.
func (r Result) Changed() bool {
	return r.Added != nil || len(r.Completed) > 0
}

// Apply adds the new todo requested by p, then marks each --complete-todo
// id complete in the order given. It stops at the first error; the caller
// must not persist the list in that case.
func Apply(list *types.TodoList, p *options.Parsed) (Result, error) {
	var res Result

	if p.Has(options.AddTodo) {
		added, err := list.Add(NewTodo(p))
		if err != nil {
			return res, fmt.Errorf("add todo: %w", err)
		}
		res.Added = added
	}

	for _, raw := range p.CompleteIDs {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return res, fmt.Errorf("complete todo %q: %w", raw, types.ErrInvalidIdentifier)
		}
		if err := list.Complete(id); err != nil {
			return res, fmt.Errorf("complete todo %d: %w", id, err)
		}
		res.Completed = append(res.Completed, id)
	}

	return res, nil
}

// NewTodo returns a builder filled from the new-todo fields of p.
func NewTodo(p *options.Parsed) *types.TodoBuilder {
	return types.NewTodoBuilder(p.TodoText).
		Due(p.Due).
		Priority(p.Priority).
		Category(p.Category).
		Completed(p.Has(options.Completed))
}

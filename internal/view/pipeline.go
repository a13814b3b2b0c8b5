// Package view selects and renders the todos shown after an invocation.
package view

import (
	"cmp"
	"slices"

	"github.com/mesh-intelligence/todo/internal/options"
	"github.com/mesh-intelligence/todo/pkg/types"
)

// Stage transforms a todo sequence. Stages return a new slice and never
// modify their input.
type Stage func([]*types.Todo) []*types.Todo

// Stages returns the stages requested by p, in their fixed order: the
// incomplete filter, the category filter, the date sort, the priority sort.
// Returns nil when --display is absent.
func Stages(p *options.Parsed) []Stage {
	if !p.Has(options.Display) {
		return nil
	}
	var stages []Stage
	if p.Has(options.ShowIncomplete) {
		stages = append(stages, Incomplete)
	}
	if p.Has(options.ShowCategory) {
		stages = append(stages, InCategory(p.ShowCategory))
	}
	if p.Has(options.SortByDate) {
		stages = append(stages, ByDate)
	}
	if p.Has(options.SortByPriority) {
		stages = append(stages, ByPriority)
	}
	return stages
}

// Select runs the stages requested by p over todos. Without --display the
// input is returned unchanged.
func Select(todos []*types.Todo, p *options.Parsed) []*types.Todo {
	out := todos
	for _, stage := range Stages(p) {
		out = stage(out)
	}
	return out
}

// Incomplete keeps todos that are not completed.
func Incomplete(todos []*types.Todo) []*types.Todo {
	return filter(todos, func(t *types.Todo) bool { return !t.Completed })
}

// InCategory keeps todos whose category equals category exactly.
// Todos without a category never match.
func InCategory(category string) Stage {
	return func(todos []*types.Todo) []*types.Todo {
		return filter(todos, func(t *types.Todo) bool {
			return t.HasCategory() && t.Category == category
		})
	}
}

// ByDate drops undated todos and stable-sorts the rest by due date, earliest
// first.
func ByDate(todos []*types.Todo) []*types.Todo {
	out := filter(todos, (*types.Todo).HasDue)
	slices.SortStableFunc(out, func(a, b *types.Todo) int {
		return a.Due.Compare(b.Due)
	})
	return out
}

// ByPriority drops todos without a priority and stable-sorts the rest,
// priority 1 first.
func ByPriority(todos []*types.Todo) []*types.Todo {
	out := filter(todos, (*types.Todo).HasPriority)
	slices.SortStableFunc(out, func(a, b *types.Todo) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
	return out
}

func filter(todos []*types.Todo, keep func(*types.Todo) bool) []*types.Todo {
	out := make([]*types.Todo, 0, len(todos))
	for _, t := range todos {
		if t != nil && keep(t) {
			out = append(out, t)
		}
	}
	return out
}

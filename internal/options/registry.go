// Package options defines the recognized command-line flags and parses a
// raw argument list into a validated Parsed set.
package options

import "strings"

// FlagMarker prefixes every flag token.
const FlagMarker = "--"

// Flag identifies one recognized command-line option.
type Flag int

// Recognized flags.
const (
	AddTodo Flag = iota
	TodoText
	CSVFile
	Due
	Priority
	Category
	Completed
	CompleteTodo
	SortByDate
	SortByPriority
	Display
	ShowIncomplete
	ShowCategory
)

// flagNames maps each Flag to its wire name.
var flagNames = [...]string{
	AddTodo:        "--add-todo",
	TodoText:       "--todo-text",
	CSVFile:        "--csv-file",
	Due:            "--due",
	Priority:       "--priority",
	Category:       "--category",
	Completed:      "--completed",
	CompleteTodo:   "--complete-todo",
	SortByDate:     "--sort-by-date",
	SortByPriority: "--sort-by-priority",
	Display:        "--display",
	ShowIncomplete: "--show-incomplete",
	ShowCategory:   "--show-category",
}

// String returns the flag's wire name, e.g. "--csv-file".
func (f Flag) String() string {
	if f < 0 || int(f) >= len(flagNames) {
		return "--unknown"
	}
	return flagNames[f]
}

// Definition describes a recognized flag.
type Definition struct {
	Flag   Flag
	HasArg bool   // Expects one or more trailing values.
	Arg    string // Value placeholder shown in usage.
	Help   string
}

// Name returns the definition's wire name.
func (d Definition) Name() string { return d.Flag.String() }

// Registry is the read-only table of recognized flags keyed by wire name.
type Registry struct {
	defs  map[string]Definition
	order []Flag
}

// NewRegistry builds a registry from defs. Later duplicates replace earlier
// ones; usage lists flags in first-seen order.
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if _, ok := r.defs[d.Name()]; !ok {
			r.order = append(r.order, d.Flag)
		}
		r.defs[d.Name()] = d
	}
	return r
}

// DefaultRegistry returns the registry of every flag the tracker accepts.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Definition{Flag: AddTodo, Help: "Add a new todo. If this option is provided, then --todo-text must also be provided."},
		Definition{Flag: TodoText, HasArg: true, Arg: "<description of todo>", Help: "A description of the todo."},
		Definition{Flag: CSVFile, HasArg: true, Arg: "<path/to/file>", Help: "The CSV file containing the todos. This option is required."},
		Definition{Flag: Due, HasArg: true, Arg: "<due date>", Help: "(Optional) Sets the due date of a new todo, as M/DD/YYYY or MM/DD/YYYY."},
		Definition{Flag: Priority, HasArg: true, Arg: "<1, 2, or 3>", Help: "(Optional) Sets the priority of a new todo. 1 is the highest."},
		Definition{Flag: Category, HasArg: true, Arg: "<a category name>", Help: "(Optional) Sets the category of a new todo."},
		Definition{Flag: Completed, Help: "(Optional) Marks a new todo as already completed."},
		Definition{Flag: CompleteTodo, HasArg: true, Arg: "<id> [<id>...]", Help: "Mark the todos with the provided IDs as complete."},
		Definition{Flag: Display, Help: "Display todos. Without other display options, every todo is shown."},
		Definition{Flag: ShowIncomplete, Help: "If --display is provided, only show incomplete todos."},
		Definition{Flag: ShowCategory, HasArg: true, Arg: "<category>", Help: "If --display is provided, only show todos in the given category."},
		Definition{Flag: SortByDate, Help: "If --display is provided, sort by due date. Cannot be combined with --sort-by-priority."},
		Definition{Flag: SortByPriority, Help: "If --display is provided, sort by priority. Cannot be combined with --sort-by-date."},
	)
}

// Lookup returns the definition for a wire name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// Definition returns the definition registered for f.
func (r *Registry) Definition(f Flag) (Definition, bool) {
	return r.Lookup(f.String())
}

// Definitions returns every definition in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, f := range r.order {
		out = append(out, r.defs[f.String()])
	}
	return out
}

// IsFlagToken reports whether tok is shaped like a flag.
func IsFlagToken(tok string) bool {
	return strings.HasPrefix(tok, FlagMarker)
}

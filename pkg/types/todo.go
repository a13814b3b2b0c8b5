package types

import (
	"strconv"
	"strings"
	"time"
)

// Priority bounds. 1 is the most urgent.
const (
	PriorityHigh = 1
	PriorityLow  = 3
)

// Due date layouts, selected by input length.
const (
	DueLayoutShort = "1/02/2006"  // M/DD/YYYY
	DueLayoutLong  = "01/02/2006" // MM/DD/YYYY
)

// Todo represents one task in the list.
// Optional fields use their zero value for "not set": a zero Due, a zero
// Priority, an empty Category.
type Todo struct {
	ID        int       `json:"id"`                 // 1-based position, re-derived on every load.
	Text      string    `json:"text"`               // Display text (required, non-empty).
	Completed bool      `json:"completed"`          // The only field that changes after Build.
	Due       time.Time `json:"due,omitzero"`       // Due date (date only, UTC).
	Priority  int       `json:"priority,omitempty"` // 1..3 when set.
	Category  string    `json:"category,omitempty"` // Free-form label.
}

// HasDue reports whether the todo carries a due date.
func (t *Todo) HasDue() bool { return !t.Due.IsZero() }

// HasPriority reports whether the todo carries a priority.
func (t *Todo) HasPriority() bool { return t.Priority != 0 }

// HasCategory reports whether the todo carries a category.
func (t *Todo) HasCategory() bool { return t.Category != "" }

// TodoBuilder collects raw field values for a Todo. Nothing is validated
// until Build, so a partially filled builder is never observed as an
// invalid Todo.
type TodoBuilder struct {
	text      string
	completed bool
	due       string
	priority  string
	category  string
	id        int
}

// NewTodoBuilder starts a builder for a todo with the given text.
func NewTodoBuilder(text string) *TodoBuilder {
	return &TodoBuilder{text: text}
}

// Due sets the raw due date. An empty string leaves the date unset.
func (b *TodoBuilder) Due(due string) *TodoBuilder {
	b.due = due
	return b
}

// Priority sets the raw priority. An empty string leaves it unset.
func (b *TodoBuilder) Priority(priority string) *TodoBuilder {
	b.priority = priority
	return b
}

// Category sets the category label.
func (b *TodoBuilder) Category(category string) *TodoBuilder {
	b.category = category
	return b
}

// Completed sets the initial completion flag.
func (b *TodoBuilder) Completed(completed bool) *TodoBuilder {
	b.completed = completed
	return b
}

// ID sets the positional identifier.
func (b *TodoBuilder) ID(id int) *TodoBuilder {
	b.id = id
	return b
}

// Build validates the collected values and returns the Todo.
// Returns ErrEmptyText, ErrInvalidDueDate, or ErrInvalidPriority.
func (b *TodoBuilder) Build() (*Todo, error) {
	if strings.TrimSpace(b.text) == "" {
		return nil, ErrEmptyText
	}
	due, err := ParseDue(b.due)
	if err != nil {
		return nil, err
	}
	priority, err := ParsePriority(b.priority)
	if err != nil {
		return nil, err
	}
	return &Todo{
		ID:        b.id,
		Text:      b.text,
		Completed: b.completed,
		Due:       due,
		Priority:  priority,
		Category:  b.category,
	}, nil
}

// ParseDue parses a due date in M/DD/YYYY or MM/DD/YYYY form. The layout
// is chosen by length. An empty string yields the zero time. 01/01/0001 is
// rejected because the zero time means "no due date".
func ParseDue(s string) (time.Time, error) {
	var layout string
	switch len(s) {
	case 0:
		return time.Time{}, nil
	case len(DueLayoutShort):
		layout = DueLayoutShort
	case len(DueLayoutLong):
		layout = DueLayoutLong
	default:
		return time.Time{}, ErrInvalidDueDate
	}
	t, err := time.Parse(layout, s)
	if err != nil || t.IsZero() {
		return time.Time{}, ErrInvalidDueDate
	}
	return t, nil
}

// FormatDue renders a due date as MM/DD/YYYY.
func FormatDue(t time.Time) string {
	return t.Format(DueLayoutLong)
}

// ParsePriority parses a priority in [PriorityHigh, PriorityLow]. An empty
// string yields 0 (unset).
func ParsePriority(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	p, err := strconv.Atoi(s)
	if err != nil || p < PriorityHigh || p > PriorityLow {
		return 0, ErrInvalidPriority
	}
	return p, nil
}

package view

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mesh-intelligence/todo/pkg/types"
)

// noValue marks an unset field in text output.
const noValue = "-"

// Render writes todos to w in the given format (types.OutputText or
// types.OutputJSON). An empty format means text.
func Render(w io.Writer, todos []*types.Todo, format string) error {
	switch strings.ToLower(format) {
	case types.OutputJSON:
		return renderJSON(w, todos)
	case types.OutputText, "":
		return renderText(w, todos)
	default:
		return fmt.Errorf("%w: %q", types.ErrOutputUnknown, format)
	}
}

func renderJSON(w io.Writer, todos []*types.Todo) error {
	if todos == nil {
		todos = []*types.Todo{}
	}
	out, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func renderText(w io.Writer, todos []*types.Todo) error {
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, "No todos to display.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tDUE\tPRIORITY\tCATEGORY\tTEXT")
	for _, t := range todos {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, doneMark(t), dueText(t), priorityText(t), categoryText(t), t.Text)
	}
	return tw.Flush()
}

func doneMark(t *types.Todo) string {
	if t.Completed {
		return "[x]"
	}
	return "[ ]"
}

func dueText(t *types.Todo) string {
	if !t.HasDue() {
		return noValue
	}
	return types.FormatDue(t.Due)
}

func priorityText(t *types.Todo) string {
	if !t.HasPriority() {
		return noValue
	}
	return fmt.Sprint(t.Priority)
}

func categoryText(t *types.Todo) string {
	if !t.HasCategory() {
		return noValue
	}
	return t.Category
}

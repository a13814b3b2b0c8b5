package options

import (
	"fmt"
	"strings"
)

// usageExamples follows the flag table in Usage.
var usageExamples = []string{
	`--csv-file todos.csv --add-todo --todo-text "finish hw9" --due 04/23/2021 --priority 1`,
	`--csv-file todos.csv --complete-todo 2 5`,
	`--csv-file todos.csv --display --show-incomplete --sort-by-date`,
}

// Usage renders the flag reference for every definition in reg.
func Usage(reg *Registry) string {
	defs := reg.Definitions()

	width := 0
	heads := make([]string, len(defs))
	for i, d := range defs {
		heads[i] = d.Name()
		if d.HasArg {
			heads[i] += " " + d.Arg
		}
		width = max(width, len(heads[i]))
	}

	var b strings.Builder
	b.WriteString("Usage:\n")
	for i, d := range defs {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, heads[i], d.Help)
	}
	b.WriteString("\nExamples:\n")
	for _, ex := range usageExamples {
		fmt.Fprintf(&b, "  todo %s\n", ex)
	}
	return b.String()
}

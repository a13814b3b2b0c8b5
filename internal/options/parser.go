package options

// Validation rules applied after scanning, in this order.
var (
	exclusivePairs = [][2]Flag{{SortByDate, SortByPriority}}
	requiredFlags  = []Flag{CSVFile}
	pairedFlags    = [][2]Flag{{AddTodo, TodoText}} // first requires second
)

// Option is a recognized flag together with the values captured for it in
// one parse.
type Option struct {
	Definition
	Values []string
}

// Parsed is the validated result of one Parse call. Derived fields are set
// only when their governing flag is present; use Has to tell an absent flag
// from an empty value.
type Parsed struct {
	opts map[Flag]*Option

	CSVPath      string   // --csv-file
	TodoText     string   // --todo-text, only when --add-todo is present
	Due          string   // --due
	Priority     string   // --priority
	Category     string   // --category
	CompleteIDs  []string // --complete-todo, every captured value
	ShowCategory string   // --show-category

	// Dropped holds tokens that were not attached to any flag: tokens before
	// the first flag and tokens after a boolean flag.
	Dropped []string
}

// Parse scans args against reg and returns the validated option set.
// No partial result is returned on error.
func Parse(args []string, reg *Registry) (*Parsed, error) {
	p, err := scan(args, reg)
	if err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := p.derive(); err != nil {
		return nil, err
	}
	return p, nil
}

// scan builds the option map. Re-declaring a flag keeps the values it has
// already captured.
func scan(args []string, reg *Registry) (*Parsed, error) {
	if len(args) == 0 {
		return nil, newError(ErrMalformedCommandLine, "no options given")
	}
	if !IsFlagToken(args[0]) {
		return nil, newError(ErrMalformedCommandLine, "the command line must start with an option, got %q", args[0])
	}

	p := &Parsed{opts: make(map[Flag]*Option)}
	var current *Option
	for _, tok := range args {
		if IsFlagToken(tok) {
			def, ok := reg.Lookup(tok)
			if !ok {
				return nil, newError(ErrUnrecognizedOption, "%s", tok)
			}
			opt, seen := p.opts[def.Flag]
			if !seen {
				opt = &Option{Definition: def}
				p.opts[def.Flag] = opt
			}
			current = opt
			continue
		}
		if current == nil || !current.HasArg {
			p.Dropped = append(p.Dropped, tok)
			continue
		}
		current.Values = append(current.Values, tok)
	}
	return p, nil
}

func (p *Parsed) validate() error {
	for _, pair := range exclusivePairs {
		if p.Has(pair[0]) && p.Has(pair[1]) {
			return newError(ErrConflictingOptions, "%s and %s cannot be combined", pair[0], pair[1])
		}
	}
	for _, f := range requiredFlags {
		if !p.Has(f) {
			return newError(ErrMissingRequiredOption, "%s is required", f)
		}
	}
	for _, pair := range pairedFlags {
		if p.Has(pair[0]) && !p.Has(pair[1]) {
			return newError(ErrMissingPairedOption, "%s provided but no %s was given", pair[0], pair[1])
		}
	}
	return nil
}

// derive copies captured values into the typed fields.
func (p *Parsed) derive() error {
	var err error
	if p.CSVPath, err = p.Value(CSVFile); err != nil {
		return err
	}
	if p.Has(AddTodo) {
		if p.TodoText, err = p.Value(TodoText); err != nil {
			return err
		}
	}
	for _, field := range []struct {
		flag Flag
		dst  *string
	}{
		{Due, &p.Due},
		{Priority, &p.Priority},
		{Category, &p.Category},
		{ShowCategory, &p.ShowCategory},
	} {
		if !p.Has(field.flag) {
			continue
		}
		if *field.dst, err = p.Value(field.flag); err != nil {
			return err
		}
	}
	if p.Has(CompleteTodo) {
		if p.CompleteIDs, err = p.Values(CompleteTodo); err != nil {
			return err
		}
	}
	return nil
}

// Has reports whether f appeared on the command line.
func (p *Parsed) Has(f Flag) bool {
	_, ok := p.opts[f]
	return ok
}

// Value returns the first value captured for f.
// Returns ErrNotValueBearing for a boolean flag and ErrMissingArgumentValue
// when f is absent or captured nothing.
func (p *Parsed) Value(f Flag) (string, error) {
	vals, err := p.Values(f)
	if err != nil {
		return "", err
	}
	return vals[0], nil
}

// Values returns every value captured for f, with the same errors as Value.
func (p *Parsed) Values(f Flag) ([]string, error) {
	opt, ok := p.opts[f]
	if !ok {
		return nil, newError(ErrMissingArgumentValue, "%s was not given", f)
	}
	if !opt.HasArg {
		return nil, newError(ErrNotValueBearing, "%s", f)
	}
	if len(opt.Values) == 0 {
		return nil, newError(ErrMissingArgumentValue, "%s", f)
	}
	return opt.Values, nil
}

// Flags returns the flags present on the command line, in registry
// enumeration order.
func (p *Parsed) Flags() []Flag {
	out := make([]Flag, 0, len(p.opts))
	for f := range len(flagNames) {
		if p.Has(Flag(f)) {
			out = append(out, Flag(f))
		}
	}
	return out
}

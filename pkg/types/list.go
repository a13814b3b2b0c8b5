package types

// TodoList is the ordered, in-memory collection of todos for one
// invocation. IDs are 1-based positions.
type TodoList struct {
	todos []*Todo
}

// NewTodoList wraps todos in a list and renumbers them by position.
func NewTodoList(todos []*Todo) *TodoList {
	l := &TodoList{todos: todos}
	for i, t := range l.todos {
		t.ID = i + 1
	}
	return l
}

// Len returns the number of todos.
func (l *TodoList) Len() int { return len(l.todos) }

// Todos returns the todos in list order. The slice is shared; callers that
// reorder it must copy first.
func (l *TodoList) Todos() []*Todo { return l.todos }

// Get returns the todo with the given 1-based id.
// Returns ErrInvalidIdentifier if the id is out of range.
func (l *TodoList) Get(id int) (*Todo, error) {
	if id < 1 || id > len(l.todos) {
		return nil, ErrInvalidIdentifier
	}
	return l.todos[id-1], nil
}

// Add builds a todo from b, appends it, and assigns the next id.
// Build errors are returned unchanged and the list is left untouched.
func (l *TodoList) Add(b *TodoBuilder) (*Todo, error) {
	t, err := b.ID(len(l.todos) + 1).Build()
	if err != nil {
		return nil, err
	}
	l.todos = append(l.todos, t)
	return t, nil
}

// Complete marks the todo with the given id as done.
// Returns ErrInvalidIdentifier if the id is out of range and
// ErrAlreadyComplete if the todo is already done.
func (l *TodoList) Complete(id int) error {
	t, err := l.Get(id)
	if err != nil {
		return err
	}
	if t.Completed {
		return ErrAlreadyComplete
	}
	t.Completed = true
	return nil
}

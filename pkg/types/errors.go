package types

import "errors"

// Entity validation errors, returned by TodoBuilder.Build.
var (
	ErrEmptyText       = errors.New("todo text must not be empty")
	ErrInvalidPriority = errors.New("priority must be 1, 2, or 3")
	ErrInvalidDueDate  = errors.New("due date must be M/DD/YYYY or MM/DD/YYYY")
)

// Collection errors, returned by TodoList.Complete.
var (
	ErrInvalidIdentifier = errors.New("invalid todo id")
	ErrAlreadyComplete   = errors.New("todo is already complete")
)

// ErrStorage wraps any read or write failure on the persisted file.
var ErrStorage = errors.New("storage error")

// Package types defines the Todo entity and its builder, the TodoList
// collection, the Store interface implemented by persistence backends,
// configuration, and the standard errors shared across the tracker.
package types

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, texts ...string) *TodoList {
	t.Helper()
	todos := make([]*Todo, 0, len(texts))
	for _, text := range texts {
		todo, err := NewTodoBuilder(text).Build()
		require.NoError(t, err)
		todos = append(todos, todo)
	}
	return NewTodoList(todos)
}

func TestNewTodoListAssignsPositionalIDs(t *testing.T) {
	todos := []*Todo{{ID: 9, Text: "a"}, {ID: 3, Text: "b"}, {Text: "c"}}
	l := NewTodoList(todos)

	require.Equal(t, 3, l.Len())
	for i, todo := range l.Todos() {
		assert.Equal(t, i+1, todo.ID)
	}
}

func TestTodoListAdd(t *testing.T) {
	l := newTestList(t, "first", "second")

	todo, err := l.Add(NewTodoBuilder("third").Priority("1"))
	require.NoError(t, err)
	assert.Equal(t, 3, todo.ID)
	assert.Equal(t, "third", todo.Text)
	assert.False(t, todo.Completed)
	assert.Equal(t, 3, l.Len())
	assert.Same(t, todo, l.Todos()[2])
}

func TestTodoListAddInvalidLeavesListUnchanged(t *testing.T) {
	l := newTestList(t, "first")

	_, err := l.Add(NewTodoBuilder("bad").Priority("9"))
	assert.ErrorIs(t, err, ErrInvalidPriority)
	assert.Equal(t, 1, l.Len())
}

func TestTodoListComplete(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr error
	}{
		{name: "first id", id: 1},
		{name: "last id", id: 3},
		{name: "zero rejected", id: 0, wantErr: ErrInvalidIdentifier},
		{name: "negative rejected", id: -1, wantErr: ErrInvalidIdentifier},
		{name: "past end rejected", id: 4, wantErr: ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList(t, "a", "b", "c")
			err := l.Complete(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				for _, todo := range l.Todos() {
					assert.False(t, todo.Completed)
				}
				return
			}
			require.NoError(t, err)
			todo, err := l.Get(tt.id)
			require.NoError(t, err)
			assert.True(t, todo.Completed)
		})
	}
}

func TestTodoListCompleteTwice(t *testing.T) {
	l := newTestList(t, "a", "b")

	require.NoError(t, l.Complete(2))
	assert.ErrorIs(t, l.Complete(2), ErrAlreadyComplete)
	assert.True(t, l.Todos()[1].Completed)
	assert.False(t, l.Todos()[0].Completed)
}

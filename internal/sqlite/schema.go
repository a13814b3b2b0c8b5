package sqlite

// Schema DDL. position is the 1-based list index; ids shown to users are
// derived from it on load.
const createTodos = `CREATE TABLE IF NOT EXISTS todos (
    position INTEGER PRIMARY KEY,
    text TEXT NOT NULL,
    completed INTEGER NOT NULL DEFAULT 0,
    due TEXT,
    priority INTEGER,
    category TEXT
);`

const (
	selectTodos = `SELECT text, completed, due, priority, category FROM todos ORDER BY position`
	deleteTodos = `DELETE FROM todos`
	insertTodo  = `INSERT INTO todos (position, text, completed, due, priority, category) VALUES (?, ?, ?, ?, ?, ?)`
)

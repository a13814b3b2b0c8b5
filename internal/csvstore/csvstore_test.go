package csvstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todo/pkg/types"
)

const sampleCSV = `"id","text","completed","due","priority","category"
"1","Mail passport","true","2/28/2020","?","?"
"2","Study for finals","false","?","2","school"
"3","Clean the house","false","3/22/2020","3","home"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	list, err := New().Load(writeFile(t, sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())

	todos := list.Todos()

	assert.Equal(t, 1, todos[0].ID)
	assert.Equal(t, "Mail passport", todos[0].Text)
	assert.True(t, todos[0].Completed)
	assert.Equal(t, "02/28/2020", types.FormatDue(todos[0].Due))
	assert.False(t, todos[0].HasPriority())
	assert.False(t, todos[0].HasCategory())

	assert.Equal(t, 2, todos[1].ID)
	assert.False(t, todos[1].Completed)
	assert.False(t, todos[1].HasDue())
	assert.Equal(t, 2, todos[1].Priority)
	assert.Equal(t, "school", todos[1].Category)

	assert.Equal(t, 3, todos[2].Priority)
	assert.Equal(t, "home", todos[2].Category)
}

func TestLoadRenumbersByPosition(t *testing.T) {
	content := `"id","text","completed","due","priority","category"
"7","a","false","?","?","?"
"3","b","false","?","?","?"
`
	list, err := New().Load(writeFile(t, content))
	require.NoError(t, err)
	assert.Equal(t, 1, list.Todos()[0].ID)
	assert.Equal(t, 2, list.Todos()[1].ID)
}

func TestLoadHeaderOnly(t *testing.T) {
	list, err := New().Load(writeFile(t, headerRow()+"\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, list.Len())
}

func TestLoadToleratesCRLFAndBlankLines(t *testing.T) {
	content := "\"id\",\"text\",\"completed\",\"due\",\"priority\",\"category\"\r\n" +
		"\r\n" +
		"\"1\",\"buy milk\",\"false\",\"?\",\"?\",\"?\"\r\n"
	list, err := New().Load(writeFile(t, content))
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, "buy milk", list.Todos()[0].Text)
	assert.False(t, list.Todos()[0].HasCategory())
}

func TestLoadTrailingCommaRows(t *testing.T) {
	content := `"id","text","completed","due","priority","category",
"1","buy milk","false","?","?","?",
"2","finish hw9","true","4/23/2021","1","school",
`
	list, err := New().Load(writeFile(t, content))
	require.NoError(t, err)
	require.Equal(t, 2, list.Len())

	todos := list.Todos()
	assert.Equal(t, "buy milk", todos[0].Text)
	assert.False(t, todos[0].HasCategory())
	assert.Equal(t, "school", todos[1].Category)
	assert.Equal(t, 1, todos[1].Priority)
	assert.True(t, todos[1].Completed)
}

func TestSaveRewritesTrailingCommaRows(t *testing.T) {
	path := writeFile(t, `"id","text","completed","due","priority","category",
"1","buy milk","false","?","?","home",
`)
	store := New()
	list, err := store.Load(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(path, list))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, headerRow()+"\n"+`"1","buy milk","false","?","?","home"`+"\n", string(data))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		wantErr error
	}{
		{name: "too few fields", row: `"1","buy milk","false"`},
		{name: "bad priority", row: `"1","x","false","?","7","?"`, wantErr: types.ErrInvalidPriority},
		{name: "bad date", row: `"1","x","false","2020-02-28","?","?"`, wantErr: types.ErrInvalidDueDate},
		{name: "missing text", row: `"1","?","false","?","?","?"`, wantErr: types.ErrEmptyText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, headerRow()+"\n"+tt.row+"\n")
			_, err := New().Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrStorage)
			assert.Contains(t, err.Error(), "line 2")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, types.ErrStorage)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveFormat(t *testing.T) {
	list := types.NewTodoList(nil)
	_, err := list.Add(types.NewTodoBuilder("buy milk"))
	require.NoError(t, err)
	_, err = list.Add(types.NewTodoBuilder("finish hw9").Due("4/23/2021").Priority("1").Category("school").Completed(true))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "todos.csv")
	require.NoError(t, New().Save(path, list))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `"id","text","completed","due","priority","category"
"1","buy milk","false","?","?","?"
"2","finish hw9","true","04/23/2021","1","school"
`
	assert.Equal(t, want, string(data))
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeFile(t, sampleCSV)
	store := New()

	original, err := store.Load(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(path, original))

	reloaded, err := store.Load(path)
	require.NoError(t, err)
	require.Equal(t, original.Len(), reloaded.Len())
	for i, want := range original.Todos() {
		got := reloaded.Todos()[i]
		assert.Equal(t, want.Text, got.Text)
		assert.Equal(t, want.Completed, got.Completed)
		assert.True(t, want.Due.Equal(got.Due))
		assert.Equal(t, want.Priority, got.Priority)
		assert.Equal(t, want.Category, got.Category)
	}
}

func TestSaveKeepsPermissionsAndLeavesNoTempFiles(t *testing.T) {
	path := writeFile(t, sampleCSV)
	require.NoError(t, os.Chmod(path, 0o600))

	list, err := New().Load(path)
	require.NoError(t, err)
	require.NoError(t, New().Save(path, list))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "leftover %s", e.Name())
	}
}

func TestSaveRejectsUnstorableValues(t *testing.T) {
	tests := []struct {
		name    string
		builder *types.TodoBuilder
	}{
		{name: "newline in text", builder: types.NewTodoBuilder("line one\nline two")},
		{name: "carriage return in text", builder: types.NewTodoBuilder("line one\r")},
		{name: "separator in text", builder: types.NewTodoBuilder(`say "hi","there"`)},
		{name: "text is placeholder", builder: types.NewTodoBuilder("?")},
		{name: "newline in category", builder: types.NewTodoBuilder("x").Category("home\nwork")},
		{name: "separator in category", builder: types.NewTodoBuilder("x").Category(`a","b`)},
		{name: "category is placeholder", builder: types.NewTodoBuilder("x").Category("?")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, sampleCSV)
			store := New()
			list, err := store.Load(path)
			require.NoError(t, err)
			_, err = list.Add(tt.builder)
			require.NoError(t, err)

			err = store.Save(path, list)
			assert.ErrorIs(t, err, types.ErrStorage)
			assert.ErrorIs(t, err, ErrUnstorableValue)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, sampleCSV, string(data), "file must be left untouched")

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "no temp file is created")
		})
	}
}

func TestSaveKeepsAwkwardButStorableValues(t *testing.T) {
	list := types.NewTodoList(nil)
	for _, b := range []*types.TodoBuilder{
		types.NewTodoBuilder(`say "hi"`).Category(`"quoted"`),
		types.NewTodoBuilder("a, b, and c?").Category("x,"),
		types.NewTodoBuilder(`trailing quote"`),
		types.NewTodoBuilder("x").Category(`home",`),
	} {
		_, err := list.Add(b)
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "todos.csv")
	store := New()
	require.NoError(t, store.Save(path, list))

	got, err := store.Load(path)
	require.NoError(t, err)
	require.Equal(t, list.Len(), got.Len())
	for i, want := range list.Todos() {
		assert.Equal(t, want.Text, got.Todos()[i].Text)
		assert.Equal(t, want.Category, got.Todos()[i].Category)
	}
}

func TestSaveMissingDirectory(t *testing.T) {
	err := New().Save(filepath.Join(t.TempDir(), "missing", "todos.csv"), types.NewTodoList(nil))
	assert.ErrorIs(t, err, types.ErrStorage)
}

func TestStoreImplementsInterface(t *testing.T) {
	var _ types.Store = New()
}

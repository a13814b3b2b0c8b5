package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoBuilderBuild(t *testing.T) {
	tests := []struct {
		name    string
		builder *TodoBuilder
		want    *Todo
		wantErr error
	}{
		{
			name:    "text only uses defaults",
			builder: NewTodoBuilder("buy milk"),
			want:    &Todo{Text: "buy milk"},
		},
		{
			name: "all fields",
			builder: NewTodoBuilder("finish hw9").
				Due("04/23/2021").
				Priority("2").
				Category("school").
				Completed(true).
				ID(7),
			want: &Todo{
				ID:        7,
				Text:      "finish hw9",
				Completed: true,
				Due:       time.Date(2021, time.April, 23, 0, 0, 0, 0, time.UTC),
				Priority:  2,
				Category:  "school",
			},
		},
		{
			name:    "short month layout",
			builder: NewTodoBuilder("pay rent").Due("3/01/2022"),
			want:    &Todo{Text: "pay rent", Due: time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name:    "empty text rejected",
			builder: NewTodoBuilder("  "),
			wantErr: ErrEmptyText,
		},
		{
			name:    "priority above range rejected",
			builder: NewTodoBuilder("x").Priority("4"),
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "priority zero rejected",
			builder: NewTodoBuilder("x").Priority("0"),
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "non-numeric priority rejected",
			builder: NewTodoBuilder("x").Priority("high"),
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "iso date rejected",
			builder: NewTodoBuilder("x").Due("2021-04-23"),
			wantErr: ErrInvalidDueDate,
		},
		{
			name:    "wrong length rejected",
			builder: NewTodoBuilder("x").Due("4/3/2021"),
			wantErr: ErrInvalidDueDate,
		},
		{
			name:    "impossible day rejected",
			builder: NewTodoBuilder("x").Due("02/30/2021"),
			wantErr: ErrInvalidDueDate,
		},
		{
			name:    "zero date rejected",
			builder: NewTodoBuilder("x").Due("01/01/0001"),
			wantErr: ErrInvalidDueDate,
		},
		{
			name:    "first day of year two accepted",
			builder: NewTodoBuilder("x").Due("1/01/0002"),
			want:    &Todo{Text: "x", Due: time.Date(2, time.January, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.builder.Build()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTodoOptionalFields(t *testing.T) {
	bare, err := NewTodoBuilder("bare").Build()
	require.NoError(t, err)
	assert.False(t, bare.HasDue())
	assert.False(t, bare.HasPriority())
	assert.False(t, bare.HasCategory())

	full, err := NewTodoBuilder("full").Due("12/31/2030").Priority("1").Category("home").Build()
	require.NoError(t, err)
	assert.True(t, full.HasDue())
	assert.True(t, full.HasPriority())
	assert.True(t, full.HasCategory())
}

func TestFormatDue(t *testing.T) {
	d, err := ParseDue("4/05/2021")
	require.NoError(t, err)
	assert.Equal(t, "04/05/2021", FormatDue(d))
}

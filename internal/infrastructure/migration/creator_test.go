package migration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Create Core Tables")
	require.NoError(t, err)

	assert.FileExists(t, mf.UpPath)
	assert.FileExists(t, mf.DownPath)
	assert.Contains(t, mf.UpPath, "create_core_tables.up.sql")
	assert.Contains(t, mf.DownPath, "create_core_tables.down.sql")

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "Create Core Tables")
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Create Core Tables", "create_core_tables"},
		{"add-installments", "add_installments"},
		{"trailing space ", "trailing_space"},
		{"Weird!!Chars##", "weirdchars"},
		{"v2 index", "v2_index"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.input), tt.input)
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("missing directory yields empty list", func(t *testing.T) {
		list, err := ListMigrations("does-not-exist")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("pairs are listed once and sorted", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"000002_add_installments.up.sql",
			"000002_add_installments.down.sql",
			"000001_create_core_tables.up.sql",
			"000001_create_core_tables.down.sql",
		} {
			require.NoError(t, os.WriteFile(dir+"/"+name, nil, 0644))
		}

		list, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_create_core_tables", "000002_add_installments"}, list)
	})
}

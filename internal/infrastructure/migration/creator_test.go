package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("creates up and down file pair", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "add vendors table")
		require.NoError(t, err)

		assert.FileExists(t, mf.UpPath)
		assert.FileExists(t, mf.DownPath)
		assert.Contains(t, filepath.Base(mf.UpPath), "add_vendors_table.up.sql")
		assert.Contains(t, filepath.Base(mf.DownPath), "add_vendors_table.down.sql")
		assert.Len(t, mf.Version, 14)
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "migrations")

		_, err := CreateMigration(dir, "init")
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"add vendors table", "add_vendors_table"},
		{"Add-Vendors--Table", "add_vendors_table"},
		{"trailing space ", "trailing_space"},
		{"MixedCASE123", "mixedcase123"},
		{"weird!@#chars", "weirdchars"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeName(tt.input))
		})
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("empty for missing directory", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("lists up migrations only once", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"001_init.up.sql", "001_init.down.sql",
			"002_vendors.up.sql", "002_vendors.down.sql",
			"readme.txt",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("--"), 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"001_init", "002_vendors"}, migrations)
	})
}

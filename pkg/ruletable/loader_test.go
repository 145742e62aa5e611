package ruletable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/siteconfig/pkg/ruletable"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("only present keys are set", func(t *testing.T) {
		t.Parallel()

		tables, err := ruletable.Parse([]byte("grid_columns: [1, 2]\n"))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, tables.GridColumns)
		assert.Nil(t, tables.ReservedWords)
		assert.Nil(t, tables.SiteERPSystems)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		tables, err := ruletable.Parse([]byte("  \n"))
		require.NoError(t, err)
		assert.Equal(t, &ruletable.Tables{}, tables)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ruletable.Parse([]byte("colours: [red]\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ruletable.ErrParseTables)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ruletable.Parse([]byte("grid_columns: [1, 2\n"))
		assert.ErrorIs(t, err, ruletable.ErrParseTables)
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		tables, err := ruletable.Load("", "")
		require.NoError(t, err)
		assert.Equal(t, ruletable.Default(), tables)
	})

	t.Run("file overrides defaults per table", func(t *testing.T) {
		tables, err := ruletable.Load(filepath.Join("testdata", "tables.yaml"), "")
		require.NoError(t, err)

		assert.Equal(t, []string{"admin", "billing"}, tables.ReservedWords)
		assert.Equal(t, []int{3, 4}, tables.GridColumns)
		assert.Equal(t, []string{"Okta", "None"}, tables.SSOProviders)
		assert.Equal(t, ruletable.Default().SiteERPSystems, tables.SiteERPSystems)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ruletable.Load(filepath.Join(t.TempDir(), "nope.yaml"), "")
		assert.ErrorIs(t, err, ruletable.ErrReadTables)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("RTTEST_GRID_COLUMNS", "2,12")
		t.Setenv("RTTEST_RESERVED_WORDS", "root,www")

		tables, err := ruletable.Load(filepath.Join("testdata", "tables.yaml"), "RTTEST_")
		require.NoError(t, err)
		assert.Equal(t, []int{2, 12}, tables.GridColumns)
		assert.Equal(t, []string{"root", "www"}, tables.ReservedWords)
		assert.Equal(t, []string{"Okta", "None"}, tables.SSOProviders)
	})

	t.Run("invalid environment value", func(t *testing.T) {
		t.Setenv("RTBAD_GRID_COLUMNS", "two")

		_, err := ruletable.Load("", "RTBAD_")
		assert.ErrorIs(t, err, ruletable.ErrEnvOverlay)
	})

	t.Run("structurally invalid tables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grid_columns: [0, 13]\n"), 0o600))

		_, err := ruletable.Load(path, "")
		assert.ErrorIs(t, err, ruletable.ErrInvalidTables)
	})
}

package perspectivexml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/perspectivexml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_MissingFileIsEmpty(t *testing.T) {
	repo := perspectivexml.NewFileRepository(filepath.Join(t.TempDir(), "perspectives.xml"))

	set, err := repo.LoadAll(testCtx())
	require.NoError(t, err)
	assert.Empty(t, set.Perspectives)
	assert.Empty(t, set.Current)
}

func TestFileRepository_SaveAllSortsAndReloads(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "state", "perspectives.xml")
	repo := perspectivexml.NewFileRepository(path)

	require.NoError(t, repo.SaveAll(ctx, &entity.PerspectiveSet{
		Current:      "b",
		Perspectives: []*entity.Perspective{samplePerspective("b"), nil, samplePerspective("a")},
	}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	set, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, set.Perspectives, 2)
	assert.Equal(t, "a", set.Perspectives[0].Name)
	assert.Equal(t, "b", set.Perspectives[1].Name)
	assert.Equal(t, "b", set.Current)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".perspectives-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileRepository_SaveDeleteSetCurrent(t *testing.T) {
	ctx := testCtx()
	repo := perspectivexml.NewFileRepository(filepath.Join(t.TempDir(), "perspectives.xml"))

	require.NoError(t, repo.Save(ctx, samplePerspective("one")))
	updated := samplePerspective("one")
	updated.Description = "second version"
	require.NoError(t, repo.Save(ctx, updated))
	require.NoError(t, repo.Save(ctx, samplePerspective("two")))
	require.NoError(t, repo.SetCurrent(ctx, "two"))

	set, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, set.Perspectives, 2)
	assert.Equal(t, "second version", set.Perspectives[0].Description)
	assert.Equal(t, "two", set.Current)

	require.NoError(t, repo.Delete(ctx, "two"))
	require.NoError(t, repo.Delete(ctx, "ghost"))
	set, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, set.Perspectives, 1)
	assert.Equal(t, "one", set.Perspectives[0].Name)

	assert.Error(t, repo.Save(ctx, &entity.Perspective{}))
}

func TestFileRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perspectives.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Perspectives"), 0o600))

	_, err := perspectivexml.NewFileRepository(path).LoadAll(testCtx())
	assert.ErrorIs(t, err, entity.ErrMalformedState)
}

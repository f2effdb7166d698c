package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_InitializesOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "nested", "perspectives.db"))
	assert.False(t, lazy.IsInitialized())

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM perspectives").Scan(&count))
	assert.Zero(t, count)

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "perspectives.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "perspectives.db"))
	assert.NoError(t, lazy.Close())
	assert.Equal(t, filepath.Base(lazy.Path()), "perspectives.db")
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")
	_, err := lazy.DB(testCtx())
	assert.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

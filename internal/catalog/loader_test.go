package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoaderMemoizes(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "units.json", sampleJSON)
	l := NewLoader(nil)

	ctx := context.Background()
	first, err := l.Load(ctx, path)
	require.NoError(t, err)

	// Rewrite the file: the cached catalog must keep serving until
	// invalidated.
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
	again, err := l.Load(ctx, path)
	require.NoError(t, err)
	assert.Same(t, first, again)

	l.Invalidate(path)
	reloaded, err := l.Load(ctx, path)
	require.NoError(t, err)
	assert.NotSame(t, first, reloaded)
	assert.Equal(t, 0, reloaded.Len())
}

func TestLoaderFailureNotCached(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), "units.json", `{broken`)
	l := NewLoader(nil)

	_, err := l.Load(context.Background(), path)
	require.Error(t, err)

	// Fixing the file must be enough; no stale failure sticks around.
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0644))
	c, err := l.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	a := writeCatalog(t, dir, "a.json", sampleJSON)
	b := writeCatalog(t, dir, "b.yaml", "M:\n  ucumCode: m\n  quantityKind: Length\n  multiplier: 1\n  baseUnit: M\n")

	l := NewLoader(nil)
	cats, err := l.LoadAll(context.Background(), a, b)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, 5, cats[0].Len())
	assert.Equal(t, 1, cats[1].Len())

	_, err = l.LoadAll(context.Background(), a, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestWatchInvalidates(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, "units.json", sampleJSON)

	l := NewLoader(nil)
	require.NoError(t, l.Watch(path))
	defer func() { require.NoError(t, l.Close()) }()

	first, err := l.Load(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	// The watcher drops the cache entry asynchronously.
	deadline := time.Now().Add(5 * time.Second)
	for {
		c, err := l.Load(context.Background(), path)
		require.NoError(t, err)
		if c != first {
			assert.Equal(t, 0, c.Len())
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("catalog was not invalidated after source change")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestCloseWithoutWatch(t *testing.T) {
	l := NewLoader(nil)
	require.NoError(t, l.Close())
}

package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_PrefersDark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme")
	src := NewFileSource(path, nil)

	assert.False(t, src.PrefersDark(), "missing file means light")

	require.NoError(t, os.WriteFile(path, []byte("dark\n"), 0o600))
	assert.True(t, src.PrefersDark())

	require.NoError(t, os.WriteFile(path, []byte("light"), 0o600))
	assert.False(t, src.PrefersDark())
}

func TestFileSource_WatchReportsChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme")
	require.NoError(t, os.WriteFile(path, []byte("light"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan bool, 4)
	src := NewFileSource(path, nil)
	require.NoError(t, src.Watch(ctx, func(dark bool) { changes <- dark }))

	require.NoError(t, os.WriteFile(path, []byte("dark"), 0o600))

	select {
	case dark := <-changes:
		assert.True(t, dark)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestFileSource_WatchMissingDirectory(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "nope", "scheme"), nil)
	require.Error(t, src.Watch(context.Background(), func(bool) {}))
}

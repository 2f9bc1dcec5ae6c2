package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-typegen/internal/logging"
)

func TestWatch_DebouncesChanges(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "components", "shared")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, []string{root}, 100*time.Millisecond, logging.Discard(), func(context.Context) {
			runs.Add(1)
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	for i := range 3 {
		require.NoError(t, os.WriteFile(filepath.Join(nested, "seo.json"), []byte{byte('0' + i)}, 0o644))
	}

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), runs.Load())
}

func TestWatch_NoRoots(t *testing.T) {
	err := Watch(context.Background(), nil, time.Millisecond, logging.Discard(), func(context.Context) {
		t.Fatal("callback must not run")
	})
	require.ErrorIs(t, err, ErrNoRoots)
}

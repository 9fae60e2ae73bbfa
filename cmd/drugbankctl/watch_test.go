package main

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

func startWatch(t *testing.T, path string) (chan struct{}, context.CancelFunc, chan error) {
	t.Helper()
	changed := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 20*time.Millisecond, func(context.Context) error {
			changed <- struct{}{}
			return nil
		})
	}()
	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	return changed, cancel, done
}

func TestWatchFileDebouncesWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "export.xml")
	require.NoError(t, os.WriteFile(path, []byte("<drugbank/>"), 0o600))

	changed, cancel, done := startWatch(t, path)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("<drugbank></drugbank>"), 0o600))
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	// A burst of writes gives a single reload.
	select {
	case <-changed:
		t.Fatal("unexpected second reload")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchFilePicksUpReplacement(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "export.xml")
	require.NoError(t, os.WriteFile(path, []byte("<drugbank/>"), 0o600))

	changed, cancel, done := startWatch(t, path)

	tmp := filepath.Join(dir, "export.xml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("<drugbank></drugbank>"), 0o600))
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after rename")
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchFileIgnoresSiblings(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "export.xml")
	require.NoError(t, os.WriteFile(path, []byte("<drugbank/>"), 0o600))

	changed, cancel, done := startWatch(t, path)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600))
	select {
	case <-changed:
		t.Fatal("reload for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestWatchFileMissingDirectory(t *testing.T) {
	err := watchFile(context.Background(), filepath.Join(t.TempDir(), "nope", "export.xml"), time.Millisecond, nil)
	assert.ErrorContains(t, err, "failed to watch")
}

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoteng/voter-card-api/internal/system/config"
)

func newTestLocalStore(t *testing.T) (*localStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := newLocalStore(&config.LocalStorageConfig{
		Directory:     dir,
		PublicBaseURL: "http://localhost:8090/artifacts/",
	})
	require.NoError(t, err)
	return store, dir
}

func TestLocalStorePut(t *testing.T) {
	store, dir := newTestLocalStore(t)

	url, err := store.Put(context.Background(), "voter-cards/abc-1.pdf", "application/pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8090/artifacts/voter-cards/abc-1.pdf", url)

	written, err := os.ReadFile(filepath.Join(dir, "voter-cards", "abc-1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), written)
}

func TestLocalStoreNeverOverwrites(t *testing.T) {
	store, _ := newTestLocalStore(t)

	_, err := store.Put(context.Background(), "voter-cards/abc-1.pdf", "application/pdf", []byte("first"))
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "voter-cards/abc-1.pdf", "application/pdf", []byte("second"))
	require.Error(t, err, "existing objects must never be overwritten")
}

func TestLocalStoreCancelledContext(t *testing.T) {
	store, _ := newTestLocalStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, "voter-cards/abc-2.pdf", "application/pdf", []byte("data"))
	require.Error(t, err)
}

func TestNewSelectsBackend(t *testing.T) {
	cfg := &config.StorageConfig{
		Type: "local",
		Local: config.LocalStorageConfig{
			Directory:     t.TempDir(),
			PublicBaseURL: "http://localhost:8090/artifacts",
		},
	}

	store, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &localStore{}, store)

	_, err = New(&config.StorageConfig{Type: "tape"})
	require.Error(t, err)
}

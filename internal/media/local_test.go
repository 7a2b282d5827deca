package media

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/internal/apperr"
	"github.com/storefront/internal/config"
)

func newTestStore(t *testing.T, maxBytes int64) (*LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalStore(config.UploadConfig{Dir: dir, PublicURL: "/uploads", MaxBytes: maxBytes})
	require.NoError(t, err)
	return store, dir
}

func TestLocalStore_SaveAndDelete(t *testing.T) {
	store, dir := newTestStore(t, 1024)
	ctx := context.Background()

	ref, err := store.Save(ctx, "image/png", 4, bytes.NewReader([]byte("\x89PNG")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	path := filepath.Join(dir, filepath.Base(ref))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data)

	require.NoError(t, store.Delete(ctx, ref))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, ref))
	assert.NoError(t, store.Delete(ctx, "https://elsewhere.test/img.png"))
}

func TestLocalStore_RejectsNonImages(t *testing.T) {
	store, _ := newTestStore(t, 1024)

	_, err := store.Save(context.Background(), "application/pdf", 10, bytes.NewReader(make([]byte, 10)))
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.As(err).Kind)
}

func TestLocalStore_RejectsOversizedFiles(t *testing.T) {
	store, dir := newTestStore(t, 8)

	_, err := store.Save(context.Background(), "image/jpeg", 16, bytes.NewReader(make([]byte, 16)))
	require.Error(t, err)

	_, err = store.Save(context.Background(), "image/jpeg", 0, bytes.NewReader(make([]byte, 16)))
	require.Error(t, err)
	assert.Equal(t, "image", apperr.As(err).Field)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

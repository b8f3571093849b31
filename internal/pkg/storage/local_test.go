package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageUploadAndDownload(t *testing.T) {
	base := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStorage(base, "http://localhost:8080/uploads")
	require.NoError(t, err)

	ctx := context.Background()
	path, err := store.Upload(ctx, strings.NewReader("resume body"), "resumes/7/7-abc.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("resumes/7/7-abc.pdf"), path)

	rc, err := store.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "resume body", string(data))
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	base := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStorage(base, "http://localhost:8080/uploads")
	require.NoError(t, err)

	ctx := context.Background()

	_, err = store.Upload(ctx, strings.NewReader("x"), "../escape.txt", "text/plain")
	assert.Error(t, err)

	// A sibling directory sharing the base path's name as a prefix
	// (uploads vs uploads-evil) must also be rejected.
	_, err = store.Upload(ctx, strings.NewReader("x"), "../uploads-evil/escape.txt", "text/plain")
	assert.Error(t, err)

	_, err = store.Download(ctx, "../../etc/passwd")
	assert.Error(t, err)

	err = store.Delete(ctx, "../uploads-evil/escape.txt")
	assert.Error(t, err)
}

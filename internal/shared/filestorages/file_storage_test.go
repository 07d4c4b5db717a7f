package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"report.txt",
		"reports/2025-12-28.json",
		"nested/deep/path/report.yaml",
		"access-log.txt",
		"access_log.txt",
		"access.log.1",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "report body"

			result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "report.txt"
	_, err := storage.Put(ctx, key, strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, key, strings.NewReader("second"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestPut_AllowOverwriteTrue_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "report.txt"
	_, err := storage.Put(ctx, key, strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	result, err := storage.Put(ctx, key, strings.NewReader("second"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestPut_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "a.txt", strings.NewReader("a"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	_, err = storage.Put(ctx, "b.txt", strings.NewReader("b"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	entries, err := os.ReadDir(storage.(*fileStorage).dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, names)
}

func TestPutGet_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../access.log",
		"../../etc/passwd",
		"logs/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{AllowOverwrite: false})
			assert.ErrorIs(t, err, ErrInvalidKey, "put key %q should be invalid", key)

			_, err = storage.Get(ctx, key)
			assert.ErrorIs(t, err, ErrInvalidKey, "get key %q should be invalid", key)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "missing.log")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGet_Directory(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	require.NoError(t, os.Mkdir(filepath.Join(storage.(*fileStorage).dir, "logs"), 0755))

	_, err := storage.Get(context.Background(), "logs")
	assert.ErrorIs(t, err, ErrNotAFile)
}

func TestGet_CancelledContext(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Get(ctx, "access.log")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "logs/access.log"
	data := "1.1.1.1 100 GET /a 200 500\n2.2.2.2 101 POST /b 404 1500\n"

	result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	readCloser, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}

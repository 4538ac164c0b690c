package filesystem

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))
	info, err = fs.Stat(subDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestMemoryFS(t *testing.T) {
	fs := NewMemory()

	t.Run("read directory fails", func(t *testing.T) {
		require.NoError(t, fs.MkdirAll("/data/dir", 0755))
		_, err := fs.ReadFile("/data/dir")
		assert.Error(t, err)
	})

	t.Run("stream copy", func(t *testing.T) {
		require.NoError(t, fs.WriteFile("/data/src.bin", []byte{0, 1, 2, 255}, 0600))

		src, err := fs.Open("/data/src.bin")
		require.NoError(t, err)
		defer func() { _ = src.Close() }()

		dst, err := fs.Create("/data/dst.bin", 0600)
		require.NoError(t, err)
		_, err = io.Copy(dst, src)
		require.NoError(t, err)
		require.NoError(t, dst.Close())

		got, err := fs.ReadFile("/data/dst.bin")
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 1, 2, 255}, got)
	})

	t.Run("create truncates", func(t *testing.T) {
		require.NoError(t, fs.WriteFile("/data/t.txt", []byte("long content"), 0644))
		w, err := fs.Create("/data/t.txt", 0644)
		require.NoError(t, err)
		_, err = w.Write([]byte("short"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		got, err := fs.ReadFile("/data/t.txt")
		require.NoError(t, err)
		assert.Equal(t, "short", string(got))
	})
}

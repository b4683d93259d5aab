package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestLoader_Load_Success(t *testing.T) {
	path := writeFile(t, "poem.txt", []byte("Rust:\nsafe, fast, productive.\n"))

	doc, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "Rust:\nsafe, fast, productive.\n", doc.Content)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	doc, err := NewLoader().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Empty(t, doc.Content)
	assert.Empty(t, doc.Lines())
}

func TestLoader_Load_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoader_Load_Directory(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), t.TempDir())

	assert.Error(t, err)
}

func TestLoader_Load_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	path := writeFile(t, "secret.txt", []byte("hidden"))
	require.NoError(t, os.Chmod(path, 0000))

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestLoader_Load_InvalidUTF8(t *testing.T) {
	path := writeFile(t, "bin.dat", []byte{'o', 'k', '\n', 0xff, 0xfe, '\n'})

	_, err := NewLoader().Load(context.Background(), path)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIO))
	assert.True(t, errors.Is(err, domain.ErrInvalidEncoding))
}

func TestLoader_Load_CancelledContext(t *testing.T) {
	path := writeFile(t, "poem.txt", []byte("text"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader().Load(ctx, path)

	assert.ErrorIs(t, err, context.Canceled)
}

package httpd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_Templates(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Hello!</h1>"), 0o644))

	templates := NewTemplates(dir)
	content, err := templates.Load("index.html")
	require.NoError(err)
	require.Equal([]byte("<h1>Hello!</h1>"), content)
}

func TestTemplates_LoadIsCached(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(os.WriteFile(path, []byte("before"), 0o644))

	templates := NewTemplates(dir)
	content, err := templates.Load("index.html")
	require.NoError(err)
	require.Equal([]byte("before"), content)

	// 磁盘上的改动不影响已缓存的内容
	require.NoError(os.WriteFile(path, []byte("after"), 0o644))
	content, err = templates.Load("index.html")
	require.NoError(err)
	require.Equal([]byte("before"), content)
}

func TestTemplates_MissingFile(t *testing.T) {
	require := require.New(t)

	templates := NewTemplates(t.TempDir())
	_, err := templates.Load("missing.html")
	require.ErrorIs(err, os.ErrNotExist)
}

package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reviewdeps/internal/adapters/fs"
	"go.trai.ch/reviewdeps/internal/core/domain"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	}
}

func TestCopier_CopyDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "rand-0.6.1")
	writeTree(t, src, map[string]string{
		"Cargo.toml":   "[package]\nname = \"rand\"\n",
		"src/lib.rs":   "pub fn random() {}\n",
		"src/distr.rs": "// distributions\n",
		"benches/a.rs": "",
	})
	require.NoError(t, os.Symlink("lib.rs", filepath.Join(src, "src", "alias.rs")))

	dst := filepath.Join(t.TempDir(), "rand:0.6.1")
	require.NoError(t, fs.NewCopier().CopyDir(src, dst))

	content, err := os.ReadFile(filepath.Join(dst, "src", "lib.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub fn random() {}\n", string(content))
	assert.FileExists(t, filepath.Join(dst, "benches", "a.rs"))

	target, err := os.Readlink(filepath.Join(dst, "src", "alias.rs"))
	require.NoError(t, err)
	assert.Equal(t, "lib.rs", target)
}

func TestCopier_CopyDir_DestinationExists(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"Cargo.toml": ""})

	dst := t.TempDir()
	err := fs.NewCopier().CopyDir(src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDestinationExists.Error())
}

func TestCopier_CopyDir_MissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out")
	err := fs.NewCopier().CopyDir(filepath.Join(t.TempDir(), "missing"), dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCopyFailed.Error())
	assert.NoDirExists(t, dst)
}

func TestCopier_CopyDir_SourceIsFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "Cargo.toml")
	require.NoError(t, os.WriteFile(src, nil, domain.FilePerm))

	err := fs.NewCopier().CopyDir(src, filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCopyFailed.Error())
}

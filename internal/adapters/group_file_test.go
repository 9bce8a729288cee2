package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkgset-sync/internal/types"
)

func TestGroupFileAdapter_Path(t *testing.T) {
	adapter := NewGroupFileAdapter("src/groups")
	assert.Equal(t, filepath.Join("src", "groups", "purescript.dhall"), adapter.Path("purescript"))
}

func TestGroupFileAdapter_ReadMissing(t *testing.T) {
	adapter := NewGroupFileAdapter(t.TempDir())
	path := adapter.Path("purescript")
	file, err := adapter.Read(path)
	require.NoError(t, err)
	assert.False(t, file.Exists)
	assert.Equal(t, path, file.Path)
	assert.False(t, adapter.Exists(path))
}

func TestGroupFileAdapter_WriteThenRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "groups")
	adapter := NewGroupFileAdapter(dir)
	path := adapter.Path("purescript")
	require.NoError(t, adapter.Write(path, "let mkPackage = ./../mkPackage.dhall in {}"))

	file, err := adapter.Read(path)
	require.NoError(t, err)
	want := types.GroupFile{Path: path, Content: "let mkPackage = ./../mkPackage.dhall in {}", Exists: true}
	if diff := cmp.Diff(want, file); diff != "" {
		t.Fatalf("unexpected group file (-want +got):\n%s", diff)
	}
	assert.True(t, adapter.Exists(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestGroupFileAdapter_WritePreservesMode(t *testing.T) {
	adapter := NewGroupFileAdapter(t.TempDir())
	path := adapter.Path("purescript")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	require.NoError(t, adapter.Write(path, "{ }"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestGroupFileAdapter_ReadError(t *testing.T) {
	dir := t.TempDir()
	adapter := NewGroupFileAdapter(dir)
	path := adapter.Path("purescript")
	require.NoError(t, os.MkdirAll(path, 0o755))
	_, err := adapter.Read(path)
	require.Error(t, err)
	assert.Equal(t, types.ErrorKindIO, types.KindOf(err))
	assert.False(t, adapter.Exists(path))
}

func TestGroupFileAdapter_List(t *testing.T) {
	dir := t.TempDir()
	adapter := NewGroupFileAdapter(dir)
	require.NoError(t, adapter.Write(adapter.Path("purescript"), "{}"))
	require.NoError(t, adapter.Write(adapter.Path("contrib"), "{}"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0o644))

	paths, err := adapter.List()
	require.NoError(t, err)
	assert.Equal(t, []string{adapter.Path("contrib"), adapter.Path("purescript")}, paths)
}

func TestGroupFileAdapter_ListMissingDir(t *testing.T) {
	adapter := NewGroupFileAdapter(filepath.Join(t.TempDir(), "missing"))
	paths, err := adapter.List()
	require.NoError(t, err)
	assert.Empty(t, paths)
}

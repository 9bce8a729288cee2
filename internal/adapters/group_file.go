package adapters

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/bmatcuk/doublestar/v4"

	"pkgset-sync/internal/ports"
	"pkgset-sync/internal/types"
)

type GroupFileAdapter struct {
	Dir       string
	Extension string
}

func NewGroupFileAdapter(dir string) GroupFileAdapter {
	if strings.TrimSpace(dir) == "" {
		dir = types.DefaultGroupsDir
	}
	return GroupFileAdapter{Dir: dir, Extension: types.DefaultGroupExtension}
}

func (a GroupFileAdapter) Path(group string) string {
	return filepath.Join(a.Dir, group+a.Extension)
}

func (a GroupFileAdapter) Read(path string) (types.GroupFile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return types.GroupFile{Path: path}, nil
	}
	if err != nil {
		return types.GroupFile{}, types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("could not open group file "+path).
			WithCause(err))
	}
	return types.GroupFile{Path: path, Content: string(data), Exists: true}, nil
}

func (a GroupFileAdapter) Write(path string, content string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("group file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create group directory").
			WithCause(err))
	}
	if err := writeFileAtomic(path, []byte(content)); err != nil {
		return types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("unable to write group file "+path).
			WithCause(err))
	}
	return nil
}

func (a GroupFileAdapter) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// List returns every group file below Dir, sorted.
func (a GroupFileAdapter) List() ([]string, error) {
	if _, err := os.Stat(a.Dir); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	matches, err := doublestar.Glob(os.DirFS(a.Dir), "**/*"+a.Extension)
	if err != nil {
		return nil, types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list group files").
			WithCause(err))
	}
	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		paths = append(paths, filepath.Join(a.Dir, filepath.FromSlash(match)))
	}
	sort.Strings(paths)
	return paths, nil
}

var _ ports.GroupStorePort = GroupFileAdapter{}

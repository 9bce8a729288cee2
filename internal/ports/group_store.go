package ports

import "pkgset-sync/internal/types"

type GroupStorePort interface {
	Path(group string) string
	// Read loads the whole file. A missing file yields Exists=false and no error.
	Read(path string) (types.GroupFile, error)
	Write(path string, content string) error
	Exists(path string) bool
	List() ([]string, error)
}

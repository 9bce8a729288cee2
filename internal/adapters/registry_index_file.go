package adapters

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pkgset-sync/internal/ports"
	"pkgset-sync/internal/shared"
	"pkgset-sync/internal/types"
)

// RegistryIndexFileAdapter reads the registry index directly. JSON files
// are decoded as JSON, anything else as YAML. The file is loaded once.
type RegistryIndexFileAdapter struct {
	Path   string
	mu     sync.Mutex
	cached map[string]any
	loaded bool
}

func NewRegistryIndexFileAdapter(path string) *RegistryIndexFileAdapter {
	return &RegistryIndexFileAdapter{Path: path}
}

// Present treats a key with a null value as absent, matching `jq '."name"?'`.
func (a *RegistryIndexFileAdapter) Present(_ context.Context, name string) (bool, error) {
	index, err := a.load()
	if err != nil {
		return false, err
	}
	value, ok := index[name]
	return ok && value != nil, nil
}

func (a *RegistryIndexFileAdapter) Names(_ context.Context) ([]string, error) {
	index, err := a.load()
	if err != nil {
		return nil, err
	}
	return shared.SortedKeys(index), nil
}

func (a *RegistryIndexFileAdapter) load() (map[string]any, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("registry index file not found").
			WithCause(err))
	}
	index := map[string]any{}
	if strings.EqualFold(filepath.Ext(a.Path), ".json") {
		err = json.Unmarshal(data, &index)
	} else {
		err = yaml.Unmarshal(data, &index)
	}
	if err != nil {
		return nil, types.WithKind(types.ErrorKindMalformed, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid registry index format").
			WithCause(err))
	}
	a.cached = index
	a.loaded = true
	return index, nil
}

var _ ports.NameIndexPort = (*RegistryIndexFileAdapter)(nil)

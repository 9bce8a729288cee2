package adapters

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"

	"pkgset-sync/internal/core"
	"pkgset-sync/internal/ports"
	"pkgset-sync/internal/types"
)

//go:embed schema/bower-info.schema.json
var bowerInfoSchema string

type bowerInfo struct {
	Latest struct {
		Version    string `json:"version"`
		Homepage   string `json:"homepage"`
		Repository *struct {
			URL string `json:"url"`
		} `json:"repository"`
		Dependencies map[string]string `json:"dependencies"`
	} `json:"latest"`
}

type MetadataFetcherAdapter struct {
	Client           ports.UpstreamClientPort
	CacheDir         string
	DependencyPrefix string
}

func NewMetadataFetcherAdapter(client ports.UpstreamClientPort, cacheDir string, dependencyPrefix string) MetadataFetcherAdapter {
	if strings.TrimSpace(cacheDir) == "" {
		cacheDir = types.DefaultCacheDir
	}
	return MetadataFetcherAdapter{
		Client:           client,
		CacheDir:         cacheDir,
		DependencyPrefix: dependencyPrefix,
	}
}

// CachePath is where the raw payload for name is kept.
func (a MetadataFetcherAdapter) CachePath(name string) string {
	return filepath.Join(a.CacheDir, name+".json")
}

func (a MetadataFetcherAdapter) Fetch(ctx context.Context, name string) (types.PackageParameters, error) {
	if !types.ValidPackageName(name) {
		return types.PackageParameters{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid package name %q", name))
	}
	payload, err := a.payload(ctx, name)
	if err != nil {
		return types.PackageParameters{}, err
	}
	return a.decode(name, payload)
}

// payload returns the cached payload for name, querying upstream and
// filling the cache on a miss.
func (a MetadataFetcherAdapter) payload(ctx context.Context, name string) ([]byte, error) {
	path := a.CachePath(name)
	data, err := os.ReadFile(path)
	if err == nil {
		log.Ctx(ctx).Debug().Str("package", name).Str("path", path).Msg("using cached metadata")
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, emptyPayloadError(name)
		}
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read metadata cache").
			WithCause(err))
	}
	if a.Client == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata fetcher requires an upstream client")
	}
	data, err = a.Client.Info(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, emptyPayloadError(name)
	}
	if err := os.MkdirAll(a.CacheDir, 0755); err != nil {
		return nil, types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create metadata cache directory").
			WithCause(err))
	}
	if err := writeFileAtomic(path, data); err != nil {
		return nil, types.WithKind(types.ErrorKindIO, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write metadata cache").
			WithCause(err))
	}
	log.Ctx(ctx).Debug().Str("package", name).Str("path", path).Msg("cached upstream metadata")
	return data, nil
}

func (a MetadataFetcherAdapter) decode(name string, payload []byte) (types.PackageParameters, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(bowerInfoSchema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return types.PackageParameters{}, malformedError(name, err)
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return types.PackageParameters{}, malformedError(name, errors.New(strings.Join(details, "; ")))
	}
	var info bowerInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return types.PackageParameters{}, malformedError(name, err)
	}

	rawURL := info.Latest.Homepage
	if info.Latest.Repository != nil && strings.TrimSpace(info.Latest.Repository.URL) != "" {
		rawURL = info.Latest.Repository.URL
	}
	sourceURL := core.NormalizeSourceURL(rawURL)
	if sourceURL == "" {
		return types.PackageParameters{}, malformedError(name, errors.New("neither repository url nor homepage is set"))
	}
	if err := core.ValidateVersion(info.Latest.Version); err != nil {
		return types.PackageParameters{}, err
	}

	deps := make([]string, 0, len(info.Latest.Dependencies))
	for dep := range info.Latest.Dependencies {
		deps = append(deps, strings.TrimPrefix(dep, a.DependencyPrefix))
	}
	return types.PackageParameters{
		Name:         name,
		Dependencies: core.RenderDependencies(deps),
		SourceURL:    sourceURL,
		Version:      core.NormalizeVersion(info.Latest.Version),
	}, nil
}

func emptyPayloadError(name string) error {
	return types.WithKind(types.ErrorKindEmpty, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("registry info for %s was empty", name)))
}

func malformedError(name string, cause error) error {
	return types.WithKind(types.ErrorKindMalformed, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("malformed registry info for %s", name)).
		WithCause(cause))
}

var _ ports.MetadataSourcePort = MetadataFetcherAdapter{}

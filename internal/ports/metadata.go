package ports

import (
	"context"

	"pkgset-sync/internal/types"
)

// MetadataSourcePort yields the parameters needed to render a package
// expression, caching whatever it fetched.
type MetadataSourcePort interface {
	Fetch(ctx context.Context, name string) (types.PackageParameters, error)
}

// UpstreamClientPort returns the raw registry payload for a bare package
// name. An empty payload is returned as-is; absence is reported as a
// not_found error.
type UpstreamClientPort interface {
	Info(ctx context.Context, name string) ([]byte, error)
}

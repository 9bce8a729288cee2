package ports

import "context"

// NameIndexPort is the registry index: the authoritative list of package
// names already tracked by the package set.
type NameIndexPort interface {
	Present(ctx context.Context, name string) (bool, error)
	Names(ctx context.Context) ([]string, error)
}

package ports

import "context"

type CommandRunnerPort interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

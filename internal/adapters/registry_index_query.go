package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgset-sync/internal/ports"
	"pkgset-sync/internal/types"
)

// RegistryIndexQueryAdapter answers index queries by running jq against
// the registry index file.
type RegistryIndexQueryAdapter struct {
	Runner  ports.CommandRunnerPort
	Command string
	Path    string
}

func NewRegistryIndexQueryAdapter(runner ports.CommandRunnerPort, command string, path string) RegistryIndexQueryAdapter {
	if strings.TrimSpace(command) == "" {
		command = "jq"
	}
	return RegistryIndexQueryAdapter{Runner: runner, Command: command, Path: path}
}

func (a RegistryIndexQueryAdapter) Present(ctx context.Context, name string) (bool, error) {
	if !types.ValidPackageName(name) {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid package name %q", name))
	}
	output, err := a.Runner.Run(ctx, a.Command, fmt.Sprintf(`."%s"?`, name), a.Path)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(output)) != "null", nil
}

func (a RegistryIndexQueryAdapter) Names(ctx context.Context) ([]string, error) {
	output, err := a.Runner.Run(ctx, a.Command, "-r", "keys[]", a.Path)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(string(output), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

var _ ports.NameIndexPort = RegistryIndexQueryAdapter{}

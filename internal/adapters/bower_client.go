package adapters

import (
	"bytes"
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgset-sync/internal/ports"
	"pkgset-sync/internal/types"
)

const bowerNotFoundCode = "ENOTFOUND"

type BowerClientAdapter struct {
	Runner  ports.CommandRunnerPort
	Command string
	Prefix  string
}

func NewBowerClientAdapter(runner ports.CommandRunnerPort, command string, prefix string) BowerClientAdapter {
	if strings.TrimSpace(command) == "" {
		command = "bower"
	}
	return BowerClientAdapter{Runner: runner, Command: command, Prefix: prefix}
}

// Info runs `bower info <prefix><name> --json`.
func (a BowerClientAdapter) Info(ctx context.Context, name string) ([]byte, error) {
	pkg := a.Prefix + name
	output, err := a.Runner.Run(ctx, a.Command, "info", pkg, "--json")
	if err != nil {
		if strings.Contains(err.Error(), bowerNotFoundCode) || bytes.Contains(output, []byte(bowerNotFoundCode)) {
			return nil, types.WithKind(types.ErrorKindNotFound, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("package not found upstream: "+pkg).
				WithCause(err))
		}
		return nil, err
	}
	return output, nil
}

var _ ports.UpstreamClientPort = BowerClientAdapter{}

package adapters

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgset-sync/internal/ports"
	"pkgset-sync/internal/shared"
	"pkgset-sync/internal/types"
)

type CommandRunnerAdapter struct{}

func NewCommandRunnerAdapter() CommandRunnerAdapter {
	return CommandRunnerAdapter{}
}

// Run executes name with args and returns its stdout. A non-zero exit is an
// upstream_call error carrying the command's stderr.
func (a CommandRunnerAdapter) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	log.Ctx(ctx).Debug().Str("command", name).Strs("args", args).Msg("running command")
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()
	if err != nil {
		var stderr []byte
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = exitErr.Stderr
		}
		return output, types.WithKind(types.ErrorKindUpstreamCall, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("command failed").
			WithCause(fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), shared.CommandError(stderr, err))))
	}
	return output, nil
}

var _ ports.CommandRunnerPort = CommandRunnerAdapter{}

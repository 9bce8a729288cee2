package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pkgset-sync/internal/types"
)

const (
	sourceURLSegments = 5
	groupSegmentIndex = 3
)

// ResolveGroup derives the group name from a host/owner/repo source URL,
// e.g. https://github.com/purescript/purescript-prelude -> purescript.
func ResolveGroup(sourceURL string) (string, error) {
	segments := strings.Split(sourceURL, "/")
	if len(segments) != sourceURLSegments || strings.TrimSpace(segments[groupSegmentIndex]) == "" {
		return "", types.WithKind(types.ErrorKindPathDecomposition, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("could not match group name in url").
			WithCause(fmt.Errorf("url=%q segments=%d", sourceURL, len(segments))))
	}
	return segments[groupSegmentIndex], nil
}

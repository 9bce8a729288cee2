package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgset-sync/internal/types"
)

type UpsertEngine struct {
	TemplatePrefix string
}

type UpsertResult struct {
	Content  string
	Inserted bool
	// Previous is the replaced entry, nil on insert.
	Previous *types.Entry
}

func NewUpsertEngine(templatePrefix string) UpsertEngine {
	if templatePrefix == "" {
		templatePrefix = types.DefaultTemplatePrefix
	}
	return UpsertEngine{TemplatePrefix: templatePrefix}
}

// Apply inserts or replaces the entry for name in file. Presence is decided
// by the caller from the registry index. A package absent from the index
// whose entry is already in the file has that entry replaced.
func (e UpsertEngine) Apply(ctx context.Context, file types.GroupFile, name string, expr types.PackageExpression, present bool) (UpsertResult, error) {
	assert.NotEmpty(ctx, name, "package name must be set")
	assert.NotEmpty(ctx, string(expr), "package expression must be set")

	if !present {
		if !file.Exists {
			log.Ctx(ctx).Debug().Str("package", name).Str("path", file.Path).Msg("creating group file")
			return UpsertResult{
				Content:  e.TemplatePrefix + "{" + string(expr) + "}",
				Inserted: true,
			}, nil
		}
		// An entry written by an earlier run is replaced, never appended twice.
		switch matches := FindEntries(file.Content, name); len(matches) {
		case 0:
		case 1:
			return replaceEntry(ctx, file, name, expr, matches[0]), nil
		default:
			return UpsertResult{}, matchError(name, file.Path, fmt.Sprintf("expected at most one entry, found %d", len(matches)))
		}
		content, err := appendEntry(file, string(expr))
		if err != nil {
			return UpsertResult{}, err
		}
		log.Ctx(ctx).Debug().Str("package", name).Str("path", file.Path).Msg("appending entry")
		return UpsertResult{Content: content, Inserted: true}, nil
	}

	if !file.Exists {
		return UpsertResult{}, matchError(name, file.Path, "group file does not exist for package present in registry index")
	}
	matches := FindEntries(file.Content, name)
	if len(matches) != 1 {
		return UpsertResult{}, matchError(name, file.Path, fmt.Sprintf("expected exactly one entry, found %d", len(matches)))
	}
	return replaceEntry(ctx, file, name, expr, matches[0]), nil
}

func replaceEntry(ctx context.Context, file types.GroupFile, name string, expr types.PackageExpression, target types.Entry) UpsertResult {
	content := file.Content[:target.Start] + string(expr) + file.Content[target.End:]
	log.Ctx(ctx).Debug().
		Str("package", name).
		Str("path", file.Path).
		Int("start", target.Start).
		Int("end", target.End).
		Msg("replacing entry")
	return UpsertResult{Content: content, Previous: &target}
}

// appendEntry splices expr in front of the record's closing brace, adding a
// separating comma unless the record is empty.
func appendEntry(file types.GroupFile, expr string) (string, error) {
	closeAt, ok := recordClose(file.Content)
	if !ok {
		return "", matchError("", file.Path, "invalid group file: no closing brace")
	}
	head := file.Content[:closeAt]
	tail := file.Content[closeAt:]
	trimmed := strings.TrimRight(head, " \t\r\n")
	switch {
	case strings.HasSuffix(trimmed, "{"):
		return head + expr + tail, nil
	case strings.HasSuffix(trimmed, "="):
		// empty record literal {=}
		before := strings.TrimRight(strings.TrimSuffix(trimmed, "="), " \t\r\n")
		if strings.HasSuffix(before, "{") {
			return before + expr + tail, nil
		}
	}
	return head + "," + expr + tail, nil
}

func matchError(name string, path string, detail string) error {
	return types.WithKind(types.ErrorKindMatch, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("could not match package expression").
		WithCause(fmt.Errorf("package=%q path=%q: %s", name, path, detail)))
}

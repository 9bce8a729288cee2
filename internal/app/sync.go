package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/sahilm/fuzzy"

	"pkgset-sync/internal/core"
	"pkgset-sync/internal/types"
)

const maxSuggestions = 3

// Sync fetches, renders and upserts a single package. Every error is fatal
// and returned alongside a failed report.
func (s Service) Sync(ctx context.Context, req SyncRequest) (types.SyncReport, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return types.SyncReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	primed, err := s.prime(ctx, name)
	if err != nil {
		report := failedReport(name, err)
		if types.KindOf(err) == types.ErrorKindNotFound {
			report.Suggestions = s.suggest(ctx, name)
		}
		return report, err
	}
	return s.apply(ctx, primed)
}

func (s Service) prime(ctx context.Context, name string) (types.PrimedPackage, error) {
	params, err := s.Metadata.Fetch(ctx, name)
	if err != nil {
		return types.PrimedPackage{}, err
	}
	return types.PrimedPackage{
		Name:       name,
		Params:     params,
		Expression: core.BuildExpression(params),
	}, nil
}

// apply runs one read-modify-write cycle for a primed package. The write
// completes before apply returns.
func (s Service) apply(ctx context.Context, primed types.PrimedPackage) (types.SyncReport, error) {
	name := primed.Name
	report := types.SyncReport{Package: name, Version: primed.Params.Version}
	group, err := core.ResolveGroup(primed.Params.SourceURL)
	if err != nil {
		return failedWith(report, err), err
	}
	report.Group = group
	report.Path = s.Groups.Path(group)

	file, err := s.Groups.Read(report.Path)
	if err != nil {
		return failedWith(report, err), err
	}
	present, err := s.Index.Present(ctx, name)
	if err != nil {
		return failedWith(report, err), err
	}
	result, err := s.Engine.Apply(ctx, file, name, primed.Expression, present)
	if err != nil {
		return failedWith(report, err), err
	}

	report.Changed = !file.Exists || result.Content != file.Content
	if report.Changed {
		if err := s.Groups.Write(report.Path, result.Content); err != nil {
			return failedWith(report, err), err
		}
	}
	if result.Inserted {
		report.Status = types.SyncStatusInserted
	} else {
		report.Status = types.SyncStatusUpdated
	}
	if result.Previous != nil {
		report.PreviousVersion = core.NormalizeVersion(result.Previous.Version)
		logVersionChange(ctx, name, report.PreviousVersion, report.Version)
	}
	log.Ctx(ctx).Info().
		Str("package", name).
		Str("path", report.Path).
		Str("status", string(report.Status)).
		Bool("changed", report.Changed).
		Msg("updated expression for package")
	return report, nil
}

func logVersionChange(ctx context.Context, name string, previous string, next string) {
	cmp, ok := core.CompareVersions(previous, next)
	switch {
	case !ok:
		log.Ctx(ctx).Debug().Str("package", name).Str("from", previous).Str("to", next).Msg("versions not comparable")
	case cmp > 0:
		log.Ctx(ctx).Warn().Str("package", name).Str("from", previous).Str("to", next).Msg("package version downgraded")
	case cmp < 0:
		log.Ctx(ctx).Debug().Str("package", name).Str("from", previous).Str("to", next).Msg("package version upgraded")
	}
}

// suggest returns index names close to name, best match first.
func (s Service) suggest(ctx context.Context, name string) []string {
	if s.Index == nil {
		return nil
	}
	names, err := s.Index.Names(ctx)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Msg("registry index unavailable for suggestions")
		return nil
	}
	var out []string
	for _, match := range fuzzy.Find(name, names) {
		if match.Str == name {
			continue
		}
		out = append(out, match.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func failedReport(name string, err error) types.SyncReport {
	return failedWith(types.SyncReport{Package: name}, err)
}

func failedWith(report types.SyncReport, err error) types.SyncReport {
	report.Status = types.SyncStatusFailed
	report.Kind = types.KindOf(err)
	report.Reason = err.Error()
	return report
}

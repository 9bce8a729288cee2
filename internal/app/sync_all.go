package app

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pkgset-sync/internal/types"
)

// SyncAll primes every package in the registry index in parallel, then
// applies the primed expressions one at a time in index order. Group files
// are shared between packages, so the apply phase never runs concurrently.
func (s Service) SyncAll(ctx context.Context, req SyncAllRequest) (types.BulkReport, error) {
	policy := req.Policy
	if policy == "" {
		policy = s.Policy
	}
	if policy == "" {
		policy = types.FailurePolicyIsolate
	}
	if policy != types.FailurePolicyIsolate && policy != types.FailurePolicyAbort {
		return types.BulkReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown failure policy %q", policy))
	}

	names, err := s.Index.Names(ctx)
	if err != nil {
		return types.BulkReport{}, err
	}
	log.Ctx(ctx).Info().Int("packages", len(names)).Str("policy", string(policy)).Msg("priming packages")

	report := types.BulkReport{Policy: policy}
	outcomes, err := s.primeAll(ctx, names, policy)
	for i, outcome := range outcomes {
		if outcome.Done && outcome.Err == nil {
			report.Primed++
			continue
		}
		if outcome.Err != nil {
			report.Reports = append(report.Reports, failedReport(names[i], outcome.Err))
		}
	}
	if err != nil {
		return report, err
	}
	log.Ctx(ctx).Info().Int("primed", report.Primed).Msg("finished priming packages")

	for i, outcome := range outcomes {
		if outcome.Err != nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		result, err := s.apply(ctx, outcome.Package)
		if err != nil {
			if types.KindOf(err) == types.ErrorKindPathDecomposition {
				result.Status = types.SyncStatusSkipped
				log.Ctx(ctx).Warn().Err(err).Str("package", names[i]).Msg("skipping package without a resolvable group")
				report.Reports = append(report.Reports, result)
				continue
			}
			report.Reports = append(report.Reports, result)
			if policy == types.FailurePolicyAbort {
				return report, err
			}
			log.Ctx(ctx).Warn().Err(err).Str("package", names[i]).Msg("failed to sync package")
			continue
		}
		report.Reports = append(report.Reports, result)
	}

	log.Ctx(ctx).Info().
		Int("updated", report.Count(types.SyncStatusUpdated)).
		Int("inserted", report.Count(types.SyncStatusInserted)).
		Int("skipped", report.Count(types.SyncStatusSkipped)).
		Int("failed", report.Count(types.SyncStatusFailed)).
		Msg("finished syncing packages")

	if req.ReportPath != "" {
		if s.Reports == nil {
			return report, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("report writer is not configured")
		}
		if err := s.Reports.WriteBulkReport(req.ReportPath, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

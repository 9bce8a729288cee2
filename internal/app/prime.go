package app

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"pkgset-sync/internal/shared"
	"pkgset-sync/internal/types"
)

type primeOutcome struct {
	Package types.PrimedPackage
	Err     error
	Done    bool
}

// Prime fetches and renders the named packages without touching group
// files. Any failure stops the run.
func (s Service) Prime(ctx context.Context, req PrimeRequest) (PrimeResult, error) {
	var names []string
	for _, name := range req.Names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	names = shared.UniqueStrings(names)
	if len(names) == 0 {
		return PrimeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one package name is required")
	}
	outcomes, err := s.primeAll(ctx, names, types.FailurePolicyAbort)
	if err != nil {
		return PrimeResult{}, err
	}
	result := PrimeResult{Packages: make([]types.PrimedPackage, 0, len(outcomes))}
	for _, outcome := range outcomes {
		result.Packages = append(result.Packages, outcome.Package)
	}
	return result, nil
}

// primeAll fetches names concurrently with at most Workers in flight.
// Outcomes are indexed like names. Under the abort policy the first failure
// stops scheduling further fetches, lets the ones in flight finish and is
// returned; under isolate every name runs and failures are only recorded.
func (s Service) primeAll(ctx context.Context, names []string, policy types.FailurePolicy) ([]primeOutcome, error) {
	outcomes := make([]primeOutcome, len(names))
	workers := s.Workers
	if workers <= 0 {
		workers = types.DefaultWorkers
	}
	var emitMu sync.Mutex
	emit := func(pkg types.PrimedPackage) {
		if s.Emit == nil {
			return
		}
		emitMu.Lock()
		defer emitMu.Unlock()
		s.Emit(pkg)
	}

	var stopped atomic.Bool
	var group errgroup.Group
	group.SetLimit(workers)
	for i, name := range names {
		group.Go(func() error {
			if stopped.Load() || ctx.Err() != nil {
				return nil
			}
			pkg, err := s.prime(ctx, name)
			outcomes[i] = primeOutcome{Package: pkg, Err: err, Done: true}
			if err != nil {
				log.Ctx(ctx).Warn().Err(err).Str("package", name).Msg("failed to prime package")
				if policy == types.FailurePolicyAbort {
					stopped.Store(true)
					return err
				}
				return nil
			}
			log.Ctx(ctx).Debug().Str("package", name).Str("version", pkg.Params.Version).Msg("primed package")
			emit(pkg)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return outcomes, err
	}
	if err := ctx.Err(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"pkgset-sync/internal/core"
)

// Check scans every group file for labels assigned more than once and,
// unless disabled, lists registry index names that no group file defines.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	paths, err := s.Groups.List()
	if err != nil {
		return CheckResult{}, err
	}
	result := CheckResult{}
	defined := map[string]struct{}{}
	for _, path := range paths {
		file, err := s.Groups.Read(path)
		if err != nil {
			return CheckResult{}, err
		}
		result.Files++
		entries := core.ScanEntries(file.Content)
		result.Entries += len(entries)
		for _, entry := range entries {
			defined[entry.Name] = struct{}{}
		}
		for _, name := range core.DuplicateEntries(file.Content) {
			result.Duplicates = append(result.Duplicates, DuplicateEntry{Path: path, Name: name})
		}
		log.Ctx(ctx).Debug().Str("path", path).Int("entries", len(entries)).Msg("scanned group file")
	}
	if req.SkipIndex || s.Index == nil {
		return result, nil
	}
	names, err := s.Index.Names(ctx)
	if err != nil {
		return CheckResult{}, err
	}
	for _, name := range names {
		if _, ok := defined[name]; !ok {
			result.Missing = append(result.Missing, name)
		}
	}
	return result, nil
}

package app

import "pkgset-sync/internal/types"

type Config struct {
	GroupsDir        string
	CacheDir         string
	RegistryIndex    string
	IndexBackend     types.IndexBackend
	TemplatePrefix   string
	DependencyPrefix string
	BowerCommand     string
	JQCommand        string
	Workers          int
	FailurePolicy    types.FailurePolicy
}

type SyncRequest struct {
	Name string
}

type PrimeRequest struct {
	Names []string
}

type PrimeResult struct {
	Packages []types.PrimedPackage
}

type SyncAllRequest struct {
	ReportPath string
	Policy     types.FailurePolicy
}

type CheckRequest struct {
	// SkipIndex disables the registry index cross-check.
	SkipIndex bool
}

type DuplicateEntry struct {
	Path string
	Name string
}

type CheckResult struct {
	Files      int
	Entries    int
	Duplicates []DuplicateEntry
	Missing    []string
}

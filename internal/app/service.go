package app

import (
	"strings"

	"pkgset-sync/internal/adapters"
	"pkgset-sync/internal/core"
	"pkgset-sync/internal/ports"
	"pkgset-sync/internal/types"
)

type Service struct {
	Metadata ports.MetadataSourcePort
	Index    ports.NameIndexPort
	Groups   ports.GroupStorePort
	Reports  ports.ReportWriterPort
	Engine   core.UpsertEngine
	Workers  int
	Policy   types.FailurePolicy
	// Emit receives every primed package. Calls are serialized.
	Emit func(types.PrimedPackage)
}

func NewService(cfg Config) Service {
	cfg = cfg.withDefaults()
	runner := adapters.NewCommandRunnerAdapter()
	client := adapters.NewBowerClientAdapter(runner, cfg.BowerCommand, cfg.DependencyPrefix)
	var index ports.NameIndexPort
	if cfg.IndexBackend == types.IndexBackendFile {
		index = adapters.NewRegistryIndexFileAdapter(cfg.RegistryIndex)
	} else {
		index = adapters.NewRegistryIndexQueryAdapter(runner, cfg.JQCommand, cfg.RegistryIndex)
	}
	return Service{
		Metadata: adapters.NewMetadataFetcherAdapter(client, cfg.CacheDir, cfg.DependencyPrefix),
		Index:    index,
		Groups:   adapters.NewGroupFileAdapter(cfg.GroupsDir),
		Reports:  adapters.NewReportFileAdapter(),
		Engine:   core.NewUpsertEngine(cfg.TemplatePrefix),
		Workers:  cfg.Workers,
		Policy:   cfg.FailurePolicy,
	}
}

func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.GroupsDir) == "" {
		c.GroupsDir = types.DefaultGroupsDir
	}
	if strings.TrimSpace(c.CacheDir) == "" {
		c.CacheDir = types.DefaultCacheDir
	}
	if strings.TrimSpace(c.RegistryIndex) == "" {
		c.RegistryIndex = types.DefaultRegistryIndex
	}
	if c.IndexBackend == "" {
		c.IndexBackend = types.IndexBackendQuery
	}
	if c.TemplatePrefix == "" {
		c.TemplatePrefix = types.DefaultTemplatePrefix
	}
	if c.Workers <= 0 {
		c.Workers = types.DefaultWorkers
	}
	if c.FailurePolicy == "" {
		c.FailurePolicy = types.FailurePolicyIsolate
	}
	return c
}

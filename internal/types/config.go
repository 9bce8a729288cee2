package types

const (
	DefaultGroupsDir        = "src/groups"
	DefaultGroupExtension   = ".dhall"
	DefaultCacheDir         = "bower-info"
	DefaultRegistryIndex    = "packages.json"
	DefaultTemplatePrefix   = "let mkPackage = ./../mkPackage.dhall in "
	DefaultDependencyPrefix = "purescript-"
	DefaultWorkers          = 8
)

type IndexBackend string

const (
	IndexBackendQuery IndexBackend = "jq"
	IndexBackendFile  IndexBackend = "file"
)

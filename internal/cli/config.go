package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgset-sync/internal/app"
	"pkgset-sync/internal/types"
)

func newAppService() app.Service {
	return app.NewService(appConfig())
}

func appConfig() app.Config {
	return app.Config{
		GroupsDir:        viper.GetString("groups_dir"),
		CacheDir:         viper.GetString("cache_dir"),
		RegistryIndex:    viper.GetString("registry_index"),
		IndexBackend:     types.IndexBackend(viper.GetString("index_backend")),
		TemplatePrefix:   viper.GetString("template_prefix"),
		DependencyPrefix: viper.GetString("dependency_prefix"),
		BowerCommand:     viper.GetString("bower_command"),
		JQCommand:        viper.GetString("jq_command"),
		Workers:          viper.GetInt("workers"),
		FailurePolicy:    types.FailurePolicy(viper.GetString("failure_policy")),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

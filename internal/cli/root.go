package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgset-sync/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "PKGSET_SYNC"

type RootConfig struct {
	ConfigFile       string
	LogLevel         string
	GroupsDir        string
	CacheDir         string
	RegistryIndex    string
	IndexBackend     string
	TemplatePrefix   string
	DependencyPrefix string
	BowerCommand     string
	JQCommand        string
	Workers          int
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		os.Exit(exitCodeForError(err))
	}
}

// printError writes the one-line fatal diagnostic. The full cause chain is
// only logged at debug level.
func printError(w io.Writer, err error) {
	log.Debug().Err(err).Msg("command failed")
	fmt.Fprintf(w, "error: %s\n", errorMessage(err))
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "pkgset-sync",
		Short:         "Keep a Dhall package set in sync with the Bower registry",
		Version:       version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.GroupsDir, "groups-dir", types.DefaultGroupsDir, "Directory holding group files")
	flags.StringVar(&cfg.CacheDir, "cache-dir", types.DefaultCacheDir, "Directory for cached registry info")
	flags.StringVar(&cfg.RegistryIndex, "registry-index", types.DefaultRegistryIndex, "Registry index file")
	flags.StringVar(&cfg.IndexBackend, "index-backend", string(types.IndexBackendQuery), "Registry index backend (jq|file)")
	flags.StringVar(&cfg.TemplatePrefix, "template-prefix", types.DefaultTemplatePrefix, "Text prepended to new group files")
	flags.StringVar(&cfg.DependencyPrefix, "dependency-prefix", types.DefaultDependencyPrefix, "Registry package name prefix")
	flags.StringVar(&cfg.BowerCommand, "bower-command", "bower", "Bower executable")
	flags.StringVar(&cfg.JQCommand, "jq-command", "jq", "jq executable")
	flags.IntVar(&cfg.Workers, "workers", types.DefaultWorkers, "Concurrent registry fetches")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("groups_dir", flags.Lookup("groups-dir"))
	_ = viper.BindPFlag("cache_dir", flags.Lookup("cache-dir"))
	_ = viper.BindPFlag("registry_index", flags.Lookup("registry-index"))
	_ = viper.BindPFlag("index_backend", flags.Lookup("index-backend"))
	_ = viper.BindPFlag("template_prefix", flags.Lookup("template-prefix"))
	_ = viper.BindPFlag("dependency_prefix", flags.Lookup("dependency-prefix"))
	_ = viper.BindPFlag("bower_command", flags.Lookup("bower-command"))
	_ = viper.BindPFlag("jq_command", flags.Lookup("jq-command"))
	_ = viper.BindPFlag("workers", flags.Lookup("workers"))

	cmd.AddCommand(newSyncCommand())
	cmd.AddCommand(newPrimeCommand())
	cmd.AddCommand(newSyncAllCommand())
	cmd.AddCommand(newCheckCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("pkgset-sync")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/pkgset-sync")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging writes to stderr; stdout carries rendered expressions.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch types.KindOf(err) {
	case types.ErrorKindMalformed, types.ErrorKindPathDecomposition:
		return 2
	case types.ErrorKindMatch:
		return 3
	case types.ErrorKindNotFound, types.ErrorKindEmpty:
		return 4
	case types.ErrorKindIO, types.ErrorKindUpstreamCall:
		return 5
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeFailedPrecondition, errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}

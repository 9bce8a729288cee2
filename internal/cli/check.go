package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgset-sync/internal/app"
	"pkgset-sync/internal/types"
)

type checkOptions struct {
	SkipIndex bool
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify every package is defined at most once across group files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.SkipIndex, "skip-index", false, "Do not compare against the registry index")
	_ = viper.BindPFlag("skip_index", cmd.Flags().Lookup("skip-index"))
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		SkipIndex: resolveBool(cmd, opts.SkipIndex, "skip_index", "skip-index"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "checked %d group files, %d entries\n", result.Files, result.Entries)
	for _, name := range result.Missing {
		fmt.Fprintf(out, "missing: %s\n", name)
	}
	if len(result.Duplicates) == 0 {
		return nil
	}
	dups := make([]string, 0, len(result.Duplicates))
	for _, dup := range result.Duplicates {
		fmt.Fprintf(out, "duplicate: %s in %s\n", dup.Name, dup.Path)
		dups = append(dups, dup.Name)
	}
	return types.WithKind(types.ErrorKindMatch, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("duplicate package entries: "+strings.Join(dups, ", ")))
}

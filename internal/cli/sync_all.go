package cli

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pkgset-sync/internal/app"
	"pkgset-sync/internal/types"
)

type syncAllOptions struct {
	Report string
	Policy string
	Print  bool
}

func newSyncAllCommand() *cobra.Command {
	opts := syncAllOptions{}
	cmd := &cobra.Command{
		Use:     "sync-all",
		Aliases: []string{"update-all"},
		Short:   "Sync every package listed in the registry index",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSyncAll(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Report, "report", "", "Write a YAML report of the run to this path")
	cmd.Flags().StringVar(&opts.Policy, "failure-policy", string(types.FailurePolicyIsolate), "Failure policy (isolate|abort)")
	cmd.Flags().BoolVar(&opts.Print, "print", false, "Print every primed expression")

	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("failure_policy", cmd.Flags().Lookup("failure-policy"))
	_ = viper.BindPFlag("print_expressions", cmd.Flags().Lookup("print"))

	return cmd
}

func runSyncAll(ctx context.Context, cmd *cobra.Command, opts syncAllOptions) error {
	service := newAppService()
	if resolveBool(cmd, opts.Print, "print_expressions", "print") {
		out := cmd.OutOrStdout()
		service.Emit = func(pkg types.PrimedPackage) {
			fmt.Fprintln(out, pkg.Expression)
		}
	}
	report, err := service.SyncAll(ctx, app.SyncAllRequest{
		ReportPath: resolveString(cmd, opts.Report, "report", "report"),
		Policy:     types.FailurePolicy(resolveString(cmd, opts.Policy, "failure_policy", "failure-policy")),
	})
	for _, entry := range report.Reports {
		if entry.Status == types.SyncStatusFailed || entry.Status == types.SyncStatusSkipped {
			fmt.Fprintln(cmd.ErrOrStderr(), formatReport(entry))
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "synced %d packages: %d updated, %d inserted, %d skipped, %d failed\n",
		report.Primed,
		report.Count(types.SyncStatusUpdated),
		report.Count(types.SyncStatusInserted),
		report.Count(types.SyncStatusSkipped),
		report.Count(types.SyncStatusFailed),
	)
	if failed := report.Count(types.SyncStatusFailed); failed > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("sync completed with failures: %d", failed))
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pkgset-sync/internal/app"
	"pkgset-sync/internal/types"
)

func newSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sync <package>",
		Aliases: []string{"from-bower"},
		Short:   "Fetch a package from the registry and upsert it into its group file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), cmd, args[0])
		},
	}
}

func runSync(ctx context.Context, cmd *cobra.Command, name string) error {
	service := newAppService()
	report, err := service.Sync(ctx, app.SyncRequest{Name: name})
	if err != nil {
		if len(report.Suggestions) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "did you mean: %s\n", strings.Join(report.Suggestions, ", "))
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatReport(report))
	return nil
}

func formatReport(report types.SyncReport) string {
	switch report.Status {
	case types.SyncStatusFailed, types.SyncStatusSkipped:
		return fmt.Sprintf("%s: %s (%s)", report.Status, report.Package, report.Reason)
	}
	line := fmt.Sprintf("%s: %s in %s", report.Status, report.Package, report.Path)
	if report.PreviousVersion != "" && report.PreviousVersion != report.Version {
		line += fmt.Sprintf(" (%s -> %s)", report.PreviousVersion, report.Version)
	}
	if !report.Changed {
		line += " (unchanged)"
	}
	return line
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pkgset-sync/internal/app"
)

func newPrimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "prime <package>...",
		Aliases: []string{"prepare-bower"},
		Short:   "Fill the registry info cache and print the rendered expressions",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrime(cmd.Context(), cmd, args)
		},
	}
}

func runPrime(ctx context.Context, cmd *cobra.Command, names []string) error {
	service := newAppService()
	result, err := service.Prime(ctx, app.PrimeRequest{Names: names})
	if err != nil {
		return err
	}
	for _, pkg := range result.Packages {
		fmt.Fprintln(cmd.OutOrStdout(), pkg.Expression)
	}
	return nil
}

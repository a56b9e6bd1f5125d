package root

import (
	"context"
	"fmt"

	"dsa_tracker/internal/app"
	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/ui"

	"github.com/spf13/cobra"
)

func newContestsCmd() *cobra.Command {
	var registered bool

	cmd := &cobra.Command{
		Use:   "contests",
		Short: "Show upcoming contests grouped by week",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := service.ContestViewAll
			if registered {
				view = service.ContestViewRegistered
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				listing, err := a.Services.Contests.Grouped(ctx, view)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderContests(listing))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&registered, "registered", false, "only contests you registered for")
	return cmd
}

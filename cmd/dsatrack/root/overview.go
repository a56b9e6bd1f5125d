package root

import (
	"context"
	"fmt"

	"dsa_tracker/internal/app"
	"dsa_tracker/internal/ui"

	"github.com/spf13/cobra"
)

func newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show progress, recent questions and this week's contests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				ov, err := a.Services.Overview.Get(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderOverview(ov))
				return nil
			})
		},
	}
}

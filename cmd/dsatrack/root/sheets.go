package root

import (
	"context"
	"fmt"

	"dsa_tracker/internal/app"
	"dsa_tracker/internal/domain/tracker"
	"dsa_tracker/internal/ui"

	"github.com/spf13/cobra"
)

func newSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "List custom sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				sheets, err := a.Services.Sheets.List(ctx)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderSheets(sheets))
				return nil
			})
		},
	}
	cmd.AddCommand(newSheetCreateCmd())
	return cmd
}

func newSheetCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create an empty sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				sheet, err := a.Services.Sheets.Create(ctx, tracker.NewSheetInput{Title: args[0], Description: description})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Created "+sheet.Title)+" "+ui.Muted.Render(sheet.ID))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "optional description")
	return cmd
}

package root

import (
	"context"
	"fmt"

	"dsa_tracker/internal/app"
	"dsa_tracker/internal/domain/tracker"
	"dsa_tracker/internal/ui"

	"github.com/spf13/cobra"
)

func newQuestionsCmd() *cobra.Command {
	var search, platform, difficulty, status string

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List tracked questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := tracker.QuestionFilter{Search: search}
			var err error
			if f.Platform, err = tracker.ParsePlatformChoice(platform); err != nil {
				return err
			}
			if f.Difficulty, err = tracker.ParseDifficultyChoice(difficulty); err != nil {
				return err
			}
			if f.Completed, err = tracker.ParseStatus(status); err != nil {
				return err
			}

			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				res, err := a.Services.Questions.Filter(ctx, f)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderQuestions(res))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "match title or tag (case-insensitive)")
	cmd.Flags().StringVar(&platform, "platform", "all", "leetcode, gfg, codeforces, custom or all")
	cmd.Flags().StringVar(&difficulty, "difficulty", "all", "easy, medium, hard or all")
	cmd.Flags().StringVar(&status, "status", "all", "completed, pending or all")
	return cmd
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <question-id>",
		Short: "Flip a question between completed and pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				res, err := a.Services.Questions.Toggle(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !res.Changed {
					fmt.Fprintln(out, ui.Muted.Render("No question with id "+args[0]))
					return nil
				}
				fmt.Fprintf(out, "%s %s\n", ui.StatusIcon(res.Question.Completed), res.Question.Title)
				return nil
			})
		},
	}
}

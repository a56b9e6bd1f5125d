package root

import (
	"context"
	"fmt"
	"os"

	"dsa_tracker/internal/app"
	"dsa_tracker/internal/platform/config"
	"dsa_tracker/internal/platform/logger"
	"dsa_tracker/internal/ui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "dsatrack",
	Short:         "DSA practice tracker",
	Long:          "dsatrack tracks practice questions, custom sheets and upcoming contests, from the terminal or over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newServeCmd(),
		newQuestionsCmd(),
		newToggleCmd(),
		newContestsCmd(),
		newOverviewCmd(),
		newSheetsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

// openApp loads configuration and builds the application. Quiet apps only log
// warnings so command output stays readable.
func openApp(ctx context.Context, quiet bool) (*app.App, error) {
	cfg, _ := config.Load()
	logger.Init(cfg.AppEnv, cfg.LogLevel)
	log := logger.Log
	if quiet {
		log = log.Level(zerolog.WarnLevel)
	}
	return app.New(ctx, cfg, log)
}

// withApp runs fn against a freshly built application and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tarund3/sports-fan-timeline/config"
	"github.com/tarund3/sports-fan-timeline/internal/logging"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Build synchronized fan timelines from game threads and play-by-play logs",
		Long: `Align crowd commentary and official scoring plays onto a shared game
clock, bucket them into fixed-length windows, and emit one timeline entry per
window with aggregate fan sentiment and a rule-derived event description.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newBuildCommand())
	cmd.AddCommand(newBatchCommand())

	return cmd
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if err := newRootCommand().Execute(); err != nil {
		slog.Error("[Timeline] Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

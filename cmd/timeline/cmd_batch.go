package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tarund3/sports-fan-timeline/config"
	"github.com/tarund3/sports-fan-timeline/internal/ingest"
	"github.com/tarund3/sports-fan-timeline/internal/sentiment"
	"github.com/tarund3/sports-fan-timeline/internal/timeline"
)

type batchFlags struct {
	dataDir  string
	outDir   string
	schedule string
	window   int
	themes   bool
}

func newBatchCommand() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Build timelines for every game in a schedule",
		Long: `Build timelines for all games listed in the schedule file. Each game reads
<game-id>.comments.jsonl and <game-id>.pbp.jsonl from the data directory. A
game whose inputs fail to parse is logged and skipped; the rest of the batch
continues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(flags)
		},
	}

	cmd.Flags().StringVar(&flags.dataDir, "data-dir", "", "Directory with per-game input files (default from DATA_DIR)")
	cmd.Flags().StringVar(&flags.outDir, "out-dir", "", "Directory for per-game timelines (default from OUT_DIR)")
	cmd.Flags().StringVar(&flags.schedule, "schedule", "", "Schedule YAML mapping game ids to tip-off timestamps")
	cmd.Flags().IntVar(&flags.window, "window", 0, "Window length in seconds (default from WINDOW_SECONDS or 60)")
	cmd.Flags().BoolVar(&flags.themes, "themes", false, "Append the theme side-channel record per game")

	_ = cmd.MarkFlagRequired("schedule")

	return cmd
}

func runBatch(flags batchFlags) error {
	dataDir := flags.dataDir
	if dataDir == "" {
		dataDir = config.DataDir()
	}
	outDir := flags.outDir
	if outDir == "" {
		outDir = config.OutDir()
	}
	window := flags.window
	if window <= 0 {
		window = config.WindowSeconds()
	}

	schedule, err := ingest.LoadSchedule(flags.schedule)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	gameIDs := make([]string, 0, len(schedule.Games))
	for id := range schedule.Games {
		gameIDs = append(gameIDs, id)
	}
	sort.Strings(gameIDs)

	// Parsing failures isolate at game granularity: log, skip, keep going.
	var games []timeline.GameInput
	for _, id := range gameIDs {
		comments, err := ingest.LoadComments(filepath.Join(dataDir, id+".comments.jsonl"))
		if err != nil {
			slog.Error("[Batch] Skipping game: comments failed to parse",
				slog.String("game_id", id),
				slog.String("error", err.Error()))
			continue
		}
		events, err := ingest.LoadEvents(filepath.Join(dataDir, id+".pbp.jsonl"), id)
		if err != nil {
			slog.Error("[Batch] Skipping game: play-by-play failed to parse",
				slog.String("game_id", id),
				slog.String("error", err.Error()))
			continue
		}
		games = append(games, timeline.GameInput{
			GameID:   id,
			StartUTC: schedule.Games[id],
			Comments: comments,
			Events:   events,
		})
	}
	if len(games) == 0 {
		return fmt.Errorf("no games could be loaded from %s", dataDir)
	}

	labeler := timeline.NewLabeler(sentiment.NewAnalyzer(), window)
	results := labeler.BuildBatch(games)

	for _, game := range results {
		outPath := filepath.Join(outDir, game.GameID+".timeline.jsonl")
		if err := writeTimeline(game, outPath, flags.themes); err != nil {
			slog.Error("[Batch] Failed to write timeline",
				slog.String("game_id", game.GameID),
				slog.String("error", err.Error()))
			continue
		}
		slog.Info("[Batch] Wrote timeline",
			slog.String("game_id", game.GameID),
			slog.Int("windows", len(game.Entries)),
			slog.String("path", outPath))
	}
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tarund3/sports-fan-timeline/config"
	"github.com/tarund3/sports-fan-timeline/internal/ingest"
	"github.com/tarund3/sports-fan-timeline/internal/models"
	"github.com/tarund3/sports-fan-timeline/internal/sentiment"
	"github.com/tarund3/sports-fan-timeline/internal/timeline"
)

type buildFlags struct {
	comments string
	pbp      string
	gameID   string
	startUTC int64
	window   int
	out      string
	themes   bool
}

func newBuildCommand() *cobra.Command {
	var flags buildFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the timeline for a single game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(flags)
		},
	}

	cmd.Flags().StringVar(&flags.comments, "comments", "", "Game-thread comments (JSONL)")
	cmd.Flags().StringVar(&flags.pbp, "pbp", "", "Play-by-play scoring events (JSONL)")
	cmd.Flags().StringVar(&flags.gameID, "game-id", "", "Game identifier")
	cmd.Flags().Int64Var(&flags.startUTC, "start", 0, "Tip-off timestamp (UTC seconds)")
	cmd.Flags().IntVar(&flags.window, "window", 0, "Window length in seconds (default from WINDOW_SECONDS or 60)")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&flags.themes, "themes", false, "Append the theme side-channel record")

	_ = cmd.MarkFlagRequired("comments")
	_ = cmd.MarkFlagRequired("pbp")
	_ = cmd.MarkFlagRequired("game-id")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func runBuild(flags buildFlags) error {
	comments, err := ingest.LoadComments(flags.comments)
	if err != nil {
		return fmt.Errorf("game %s: %w", flags.gameID, err)
	}
	events, err := ingest.LoadEvents(flags.pbp, flags.gameID)
	if err != nil {
		return fmt.Errorf("game %s: %w", flags.gameID, err)
	}

	window := flags.window
	if window <= 0 {
		window = config.WindowSeconds()
	}

	labeler := timeline.NewLabeler(sentiment.NewAnalyzer(), window)
	game := labeler.BuildGame(flags.gameID, comments, events, flags.startUTC)

	return writeTimeline(game, flags.out, flags.themes)
}

// writeTimeline serializes one record per window, plus an optional trailing
// theme record for the game.
func writeTimeline(game models.GameTimeline, outPath string, withThemes bool) error {
	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	for _, entry := range game.Entries {
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("write timeline for %s: %w", game.GameID, err)
		}
	}
	if withThemes && len(game.Themes) > 0 {
		record := struct {
			GameID string   `json:"game_id"`
			Themes []string `json:"themes"`
		}{game.GameID, game.Themes}
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("write themes for %s: %w", game.GameID, err)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/consulting-chaos/internal/highscore"
	"github.com/vovakirdan/consulting-chaos/internal/platform/tui"
	"github.com/vovakirdan/consulting-chaos/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard and personal bests",
	Long: `Display the top 10 runs and the best time of each stage.

Examples:
  chaos scores
  chaos scores --plain`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the scores instead of opening the interactive table")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	rec, err := store.LoadRecord()
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(cmd.OutOrStdout(), rec)
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunScoreboard(rec, width, height)
}

// printScores writes the record as plain text.
func printScores(w io.Writer, rec highscore.Record) {
	fmt.Fprintln(w, "Leaderboard")
	fmt.Fprintln(w)

	if len(rec.Leaderboard) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'chaos' and set the first personal best!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-20s  %-20s  %9s  %s\n", "Rank", "Name", "Title", "Total", "Date")
	fmt.Fprintf(w, "  %-4s  %-20s  %-20s  %9s  %s\n", "----", "----", "-----", "-----", "----")
	for i, e := range rec.Leaderboard {
		fmt.Fprintf(w, "  %-4d  %-20s  %-20s  %8.2fs  %s\n",
			i+1, e.Name, e.Title, e.Total, e.Date.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if rec.BestTotal != nil {
		fmt.Fprintf(w, "Best total: %.2fs\n", *rec.BestTotal)
	}
	stages := make([]string, 0, len(rec.BestStage))
	for name := range rec.BestStage {
		stages = append(stages, name)
	}
	sort.Strings(stages)
	for _, name := range stages {
		fmt.Fprintf(w, "Best %-18s %.2fs\n", name+":", rec.BestStage[name])
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/starfall/internal/storage"
)

var scoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Args:  cobra.NoArgs,
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&scoresLimit, "limit", "n", 10, "number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.TopScores(scoresLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - starfall")
	fmt.Fprintln(out)
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-8s  %-16s  %s\n", "----", "-----", "----", "---")
	for i, e := range entries {
		fmt.Fprintf(out, "  %-4d  %-8d  %-16s  %s\n", i+1, e.Score, e.CreatedAt.Local().Format("2006-01-02 15:04"), shortRun(e.RunID))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", entries[0].Score)
	return nil
}

func shortRun(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

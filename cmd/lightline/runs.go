package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightline/internal/platform/tui"
	"github.com/vovakirdan/lightline/internal/storage"
)

var (
	flagRunsDeepest bool
	flagRunsLimit   int
	flagRunsClear   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Print recorded runs",
	Long: `Display recorded runs, newest first.

Examples:
  lightline runs
  lightline runs --deepest
  lightline runs --limit 50
  lightline runs --clear`,
	Run: runRuns,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs interactively",
	Run:   runHistory,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print aggregate run statistics",
	Run:   runStats,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsDeepest, "deepest", false, "Order by deepest descent instead of newest")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runRuns(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	var (
		runs []storage.RunEntry
		err  error
	)
	if flagRunsDeepest {
		runs, err = store.DeepestRuns(flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lightline play' to record the first descent!")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-6s  %-6s  %-18s  %-8s  %s\n",
		"When", "Floors", "Steps", "Relics", "Outcome", "Danger", "Seed")
	fmt.Printf("  %-16s  %-6s  %-6s  %-6s  %-18s  %-8s  %s\n",
		"----", "------", "-----", "------", "-------", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-6d  %-6d  %-6d  %-18s  %-8s  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.FloorsCleared, r.Steps, r.Relics, r.Outcome, r.DangerMode, r.Seed)
	}
}

func runHistory(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error browsing history: %v\n", err)
		os.Exit(1)
	}
}

func runStats(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	stats, err := store.GetRunStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if stats.RunsCount == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Lightline run statistics")
	fmt.Println()
	fmt.Printf("  Runs recorded:  %d\n", stats.RunsCount)
	fmt.Printf("  Deepest floor:  %d\n", stats.DeepestFloor)
	fmt.Printf("  Total steps:    %d\n", stats.TotalSteps)
	fmt.Printf("  Relics found:   %d\n", stats.TotalRelics)
	fmt.Printf("  Average floors: %.1f\n", stats.AvgFloors)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:    %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

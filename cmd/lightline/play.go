package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightline/internal/config"
	"github.com/vovakirdan/lightline/internal/engine"
	"github.com/vovakirdan/lightline/internal/platform/tui"
	"github.com/vovakirdan/lightline/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a descent in the current terminal.

Controls:
  WASD/Arrows        - Move (burns light)
  Shift + move       - Quiet move (burns more light, makes less noise)
  E/Enter            - Interact with the tile you stand on
  Esc/P              - Pause
  R                  - Restart (after the run ends)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - More starting light, slower danger
  normal - The balance as configured
  hard   - Less starting light, faster danger

Examples:
  lightline play
  lightline play --seed 1234
  lightline play --difficulty hard
  lightline play --config ./my-balance.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom balance YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal; use 'lightline simulate' for headless runs.")
		os.Exit(1)
	}

	bal, err := config.LoadBalance(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&bal, preset)
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the run still works
		store = nil
	}

	rt := engine.NewRuntime(engine.NewReducer(bal), nil)
	rt.Start(seed)

	runErr := tui.Run(rt, store, flagFPS)
	rt.Stop()

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

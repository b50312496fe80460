package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapefall/internal/audio"
	"github.com/vovakirdan/shapefall/internal/config"
	"github.com/vovakirdan/shapefall/internal/core"
	"github.com/vovakirdan/shapefall/internal/merge"
	"github.com/vovakirdan/shapefall/internal/platform/tui"
	"github.com/vovakirdan/shapefall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game.

Controls:
  A/D, Left/Right  - Aim the drop position
  Space/S/Down     - Drop the held shape
  Mouse            - Aim with motion, drop with left click
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  shapefall play
  shapefall play --difficulty easy
  shapefall play --difficulty fixed
  shapefall play --config ./my-shapefall.yaml
  shapefall play --no-sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagDifficulty != "" {
		switch config.DifficultyPreset(flagDifficulty) {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
			os.Exit(1)
		}
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before the game loads them on Reset
	merge.SetConfigPath(flagConfig)
	merge.SetDifficultyPreset(flagDifficulty)

	game := merge.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Audio is best-effort: a headless box just plays silent.
	var sounds *audio.Player
	if gameCfg, cfgErr := config.LoadShapefall(flagConfig); cfgErr == nil && gameCfg.Audio.Enabled && !flagNoSound {
		sounds = audio.NewPlayer()
		if audioErr := sounds.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", audioErr)
			sounds = nil
		}
	}

	// Run the game
	runErr := tui.Run(game, store, sounds, cfg)

	sounds.Cleanup()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

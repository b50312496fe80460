// shapefall is a physics merge game played in the terminal.
//
// Usage:
//
//	shapefall                - Play (same as 'shapefall play')
//	shapefall play           - Play the game
//	shapefall serve          - Start SSH server for remote play
//	shapefall scores         - Show the high-score table
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.shapefall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapefall",
	Short: "Shapefall - a physics merge game in your terminal",
	Long: `Shapefall is a terminal merge game: drop shapes into a container,
fuse matching pairs into bigger ones, and keep the stack below the line.

Running shapefall with no command starts a game immediately.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  shapefall
  shapefall play --difficulty hard
  shapefall serve --ssh :2222
  shapefall scores`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shapefall/scores.db", "Path to scores database")

	// Bare 'shapefall' plays too, so the play flags live on both commands.
	registerPlayFlags(rootCmd)
	registerPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

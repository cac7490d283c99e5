// flappy is a Flappy Bird-style arcade game for the terminal.
//
// Usage:
//
//	flappy                 - Play (same as 'flappy play')
//	flappy play            - Play in this terminal
//	flappy serve           - Start SSH server for remote play
//	flappy score           - Show (or --reset) the high score
//	flappy backends        - List high score storage backends
//	flappy config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a YAML or TOML config file
//	--store <name>        - High score backend: file, sqlite, memory
//	--store-path <path>   - High score location
//	--debug               - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagStore     string
	flagStorePath string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal",
	Long: `Flappy is a terminal arcade game. Flap through the gaps between pipes,
grab coins for bonus points and beat your high score.

Available commands:
  play      - Play in this terminal (default)
  serve     - Start SSH server for remote play
  score     - Show or reset the high score
  backends  - List high score storage backends
  config    - Print the default configuration

Examples:
  flappy
  flappy play --seed 42
  flappy --store sqlite --store-path ~/.flappy/highscore.db
  flappy serve --ssh :2222
  flappy score --reset`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "High score backend (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagStorePath, "store-path", "", "High score location (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}

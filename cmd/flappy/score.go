package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagReset bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the high score",
	Long: `Display the stored high score.

Examples:
  flappy score
  flappy score --store sqlite --store-path ~/.flappy/highscore.db
  flappy score --reset`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the high score to 0")
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr, "flappy")
	store, err := openStore(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReset {
		store.Save(0)
		if got := store.Load(); got != 0 {
			return fmt.Errorf("could not reset high score (still %d)", got)
		}
		fmt.Println("High score reset.")
		return nil
	}

	best := store.Load()
	fmt.Printf("High score: %d\n", best)
	if at, ok := store.LastUpdated(); ok && best > 0 {
		fmt.Printf("Set: %s\n", at.Local().Format("2006-01-02 15:04"))
	}
	if best == 0 {
		fmt.Println()
		fmt.Println("No high score yet. Run 'flappy' to set one!")
	}
	return nil
}

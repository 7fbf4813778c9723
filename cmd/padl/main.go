// padl is a terminal pong with an optional breakout mode.
//
// Usage:
//
//	padl play                - Play against the CPU in the terminal
//	padl serve               - Host the game over SSH
//	padl prefs               - Show or reset saved control-panel settings
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for a reproducible serve sequence
//	--config <path> - Path to a custom game config YAML
//	--db <path>     - Path to the preferences database (default: ~/.padl/padl.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "padl",
	Short: "padl - terminal pong with a breakout twist",
	Long: `padl is a terminal pong against a CPU paddle, with an optional
breakout mode that drops a destructible brick wall into the court.

Available commands:
  play     - Play locally in this terminal
  serve    - Host the game over SSH
  prefs    - Show or reset saved control-panel settings

Examples:
  padl play
  padl play --difficulty hard
  padl serve --ssh :2222
  padl prefs --reset`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.padl/padl.db", "Path to preferences database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(prefsCmd)
}

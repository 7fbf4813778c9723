package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/padlkit/padl/internal/storage"
)

var flagPrefsReset bool

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or reset saved control-panel settings",
	Long: `Show the control-panel settings saved from previous sessions
(difficulty slider, breakout toggle, music), or clear them with --reset.

Examples:
  padl prefs
  padl prefs --reset`,
	Args: cobra.NoArgs,
	Run:  runPrefs,
}

func init() {
	prefsCmd.Flags().BoolVar(&flagPrefsReset, "reset", false, "Clear saved settings")
}

func runPrefs(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPrefsReset {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting preferences: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Preferences cleared.")
		return
	}

	p, ok, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading preferences: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("No saved preferences; config defaults apply.")
		return
	}

	fmt.Printf("Difficulty slider: %v/20\n", p.Slider)
	fmt.Printf("Breakout mode:     %v\n", p.Breakout)
	fmt.Printf("Music:             %v\n", p.Music)
	if !p.UpdatedAt.IsZero() {
		fmt.Printf("Last updated:      %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/padlkit/padl/internal/config"
	"github.com/padlkit/padl/internal/platform/tui"
	"github.com/padlkit/padl/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the CPU",
	Long: `Start a local game against the CPU paddle.

Controls:
  Up/W, Down/S - Move the paddle
  b            - Toggle breakout mode
  [ / ]        - Adjust CPU difficulty
  m            - Toggle music
  r            - Restart
  q/Ctrl+C     - Quit

Difficulty presets set the starting slider position:
  easy, normal, hard

Examples:
  padl play
  padl play --difficulty hard
  padl play --config ./my-padl.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	prefs, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences database: %v\n", err)
		// Continue without persistence - the game still works
		prefs = nil
	}

	model := tui.NewModel(cfg, prefs, tui.Options{
		Width:  width,
		Height: height,
		Seed:   flagSeed,
	})

	runErr := tui.Run(model)

	if prefs != nil {
		prefs.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flap/internal/assets"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/platform/tui"
)

// assetLoadTimeout bounds the startup sprite barrier.
const assetLoadTimeout = 5 * time.Second

var flagAssets string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game.

Controls:
  Mouse drag / Left,Right  - Choose a bird (before the game)
  Double-click / any key   - Start
  Click / any key          - Flap
  Click / any key          - Restart (after game over)
  Ctrl+S                   - Save a screenshot to ~/.flap/screenshots
  Q/Ctrl+C                 - Quit

Examples:
  flap play
  flap play --seed 7 --fps 30
  flap play --assets ./my-sprites
  flap play --log-file flap.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite YAML files (default: built-in sprites)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := loadConfig(logger)

	// Every sprite must be ready before the first tick
	ctx, cancel := context.WithTimeout(cmd.Context(), assetLoadTimeout)
	defer cancel()
	start := time.Now()
	names := assets.RequiredNames(characterSprites(cfg.Characters))
	sprites, err := assets.Load(ctx, assets.Source(flagAssets), names)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("assets loaded", "count", sprites.Len(), "took", time.Since(start))

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store := openStore(logger)
	roster, selected := loadProfile(logger, cfg, store)

	final, runErr := tui.Run(tui.Options{
		Config:   cfg,
		Runtime:  rt,
		Sprites:  sprites,
		Roster:   roster,
		Selected: selected,
		Logger:   logger,
	})

	if runErr == nil && store != nil {
		ch := final.Selected()
		if err := store.SaveSelection(flagProfile, ch.ID); err != nil {
			logger.Error("cannot save selection", "err", err)
		} else {
			logger.Info("selection saved", "character", ch.ID)
		}
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}

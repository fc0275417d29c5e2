package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/game"
	"github.com/vovakirdan/flap/internal/storage"
)

// newLogger builds the command logger. Logs go to --log-file when set; during
// play they are discarded otherwise, since the alternate screen owns the
// terminal. The returned function closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		if dir := filepath.Dir(flagLogFile); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, err
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flap",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig loads the configuration and logs where it came from.
func loadConfig(logger *log.Logger) config.Config {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	logger.Info("config loaded", "source", source)
	return cfg
}

// openStore opens the profile database. A missing database is not fatal for
// play; the game then starts with the configured defaults.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("profile database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// loadProfile returns the roster with the profile's unlocks applied and the
// index of the last selected character.
func loadProfile(logger *log.Logger, cfg config.Config, store *storage.Store) (game.Roster, int) {
	if store == nil {
		return game.NewRoster(cfg.Characters, nil), 0
	}

	p, err := store.LoadProfile(flagProfile)
	if err != nil {
		logger.Warn("cannot load profile", "profile", flagProfile, "err", err)
		return game.NewRoster(cfg.Characters, nil), 0
	}

	roster := game.NewRoster(cfg.Characters, p.Unlocked)
	selected := 0
	if p.SelectedCharacter != "" {
		if i := roster.IndexOf(p.SelectedCharacter); i >= 0 {
			selected = i
		} else {
			logger.Warn("saved character no longer exists", "id", p.SelectedCharacter)
		}
	}
	logger.Info("profile loaded", "profile", p.Name, "selected", p.SelectedCharacter,
		"unlocked", strings.Join(p.Unlocked, ","))
	return roster, selected
}

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/storage"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List the character roster",
	Long: `Shows every character in the roster, whether it is unlocked for the
current profile, and which one was selected last.`,
	Args: cobra.NoArgs,
	Run:  runCharacters,
}

var unlockCmd = &cobra.Command{
	Use:   "unlock <id>",
	Short: "Unlock a character",
	Long: `Unlocks a character for the current profile. Locked characters can be
played, but are drawn with a "Locked" label.

Examples:
  flap unlock ghost
  flap unlock ghost --profile alice`,
	Args: cobra.ExactArgs(1),
	Run:  runUnlock,
}

func runCharacters(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := loadConfig(logger)
	store := openStore(logger)
	roster, selected := loadProfile(logger, cfg, store)
	if store != nil {
		store.Close()
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, ch := range roster {
		if len(ch.ID) > maxIDLen {
			maxIDLen = len(ch.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Status", "Name")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "------", "----")
	for i, ch := range roster {
		status := "locked"
		if ch.Unlocked {
			status = "unlocked"
		}
		marker := " "
		if i == selected {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %-8s  %s\n", marker, maxIDLen, ch.ID, status, ch.Name)
	}

	fmt.Println()
	fmt.Println("* last selected. Run 'flap unlock <id>' to unlock a character.")
}

func runUnlock(cmd *cobra.Command, args []string) {
	id := args[0]

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := loadConfig(logger)
	if !slices.Contains(cfg.CharacterIDs(), id) {
		fail("unknown character %q (run 'flap characters' to list them)", id)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("%v", err)
	}
	added, err := store.Unlock(flagProfile, id)
	store.Close()
	if err != nil {
		fail("%v", err)
	}

	if added {
		fmt.Printf("Unlocked %s.\n", id)
	} else {
		fmt.Printf("%s is already unlocked.\n", id)
	}
}

// characterSprites returns the sprite name of every character.
func characterSprites(chars []config.Character) []string {
	names := make([]string, len(chars))
	for i, ch := range chars {
		names[i] = ch.Sprite
	}
	return names
}

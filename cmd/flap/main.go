// flap is a one-button arcade game for the terminal: pick a bird, then keep
// it in the air while gapped pipes scroll past.
//
// Usage:
//
//	flap                      - Play (same as flap play)
//	flap play                 - Play
//	flap characters           - List characters and which are unlocked
//	flap unlock <id>          - Unlock a character for the current profile
//	flap config               - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--config <path>       - Use a custom config YAML
//	--db <path>           - Set profile database path (default: ~/.flap/flap.db)
//	--profile <name>      - Profile to load and save (default: default)
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagProfile  string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flap",
	Short: "Flap - keep the bird in the air",
	Long: `Flap is a one-button arcade game that runs in your terminal.

Swipe with the mouse (or use the arrow keys) to pick a bird, double-click
or press any key to start, and click or press any key to flap.

Available commands:
  play        - Start the game (default)
  characters  - Show the character roster
  unlock      - Unlock a character for your profile
  config      - Print the effective configuration

Examples:
  flap
  flap --seed 42
  flap unlock ghost
  flap config > ~/.flap/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flap/flap.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Profile name (default \"default\")")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(unlockCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML. The output
is a complete config file and can be saved and edited.

Search order:
  --config path, ~/.flap/config.yaml, ./configs/flap.yaml, built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("config loaded", "source", source)

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}

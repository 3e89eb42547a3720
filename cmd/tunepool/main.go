package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags
var Version = "dev"

var configFile string

var rootCmd = &cobra.Command{
	Use:           "tunepool",
	Short:         "Serve shuffled, deduplicated pools of previewable tracks per genre",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tunepool/config.yaml)")
	rootCmd.AddCommand(serveCmd, sampleCmd, genresCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

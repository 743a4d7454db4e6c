package main

import (
	"fmt"
	"os"

	"github.com/aretw0/notequiz/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notequiz",
	Short: "notequiz turns study notes into a summary and a practice quiz",
	Long: `notequiz reads your notes, asks a backend for a summary and turns that summary
into multiple-choice questions you can answer in the terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadConfig reads the config file and the environment. It exits on error.
func loadConfig(cmd *cobra.Command) *config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// validateOrExit re-checks the config after flag overrides.
func validateOrExit(cfg *config.Config) {
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
}

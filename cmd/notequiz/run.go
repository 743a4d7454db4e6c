package main

import (
	"fmt"
	"os"

	"github.com/aretw0/notequiz/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive study session",
	Long: `Opens the dashboard in the terminal. Type or paste notes, then use :summarize,
:quiz and answers like "1 b". Type :help for every command.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		flags := cmd.Flags()

		if flags.Changed("backend") {
			cfg.Backend.Mode, _ = flags.GetString("backend")
		}
		if flags.Changed("url") {
			cfg.Backend.URL, _ = flags.GetString("url")
		}
		if flags.Changed("timeout") {
			cfg.Backend.Timeout, _ = flags.GetDuration("timeout")
		}
		if flags.Changed("notes-dir") {
			cfg.Notes.Dir, _ = flags.GetString("notes-dir")
		}
		if flags.Changed("plain") {
			cfg.UI.Plain, _ = flags.GetBool("plain")
		}
		validateOrExit(cfg)

		debug, _ := flags.GetBool("debug")
		note, _ := flags.GetString("note")
		if note != "" && cfg.Notes.Dir == "" {
			fmt.Println("Error: --note requires --notes-dir.")
			os.Exit(1)
		}

		if err := cli.RunSession(cli.RunOptions{Config: cfg, Debug: debug, Note: note}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("backend", "http", "Backend mode: 'http' (remote server) or 'local' (in-process)")
	runCmd.Flags().String("url", "http://127.0.0.1:5000", "Base URL of the backend (http mode)")
	runCmd.Flags().Duration("timeout", 0, "Request timeout (0 waits indefinitely)")
	runCmd.Flags().String("notes-dir", "", "Directory of Markdown notes available to :load")
	runCmd.Flags().String("note", "", "Note ID to load at start")
	runCmd.Flags().Bool("plain", false, "Disable colours, banner and Markdown rendering")

	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

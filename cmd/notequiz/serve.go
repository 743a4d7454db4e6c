package main

import (
	"fmt"
	"os"

	"github.com/aretw0/notequiz/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the reference backend HTTP server",
	Long: `Serves POST /summarize and POST /quiz, plus /health, /info, /metrics and the
OpenAPI document at /openapi.yaml.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		flags := cmd.Flags()

		if flags.Changed("addr") {
			cfg.Server.Addr, _ = flags.GetString("addr")
		}
		if flags.Changed("cache") {
			cfg.Cache.Driver, _ = flags.GetString("cache")
		}
		if flags.Changed("redis-addr") {
			cfg.Cache.RedisAddr, _ = flags.GetString("redis-addr")
		}
		if flags.Changed("seed") {
			cfg.Quiz.Seed, _ = flags.GetUint64("seed")
		}
		validateOrExit(cfg)

		debug, _ := flags.GetBool("debug")
		if err := cli.RunServer(cli.ServeOptions{Config: cfg, Debug: debug}); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":5000", "Address to listen on")
	serveCmd.Flags().String("cache", "memory", "Summary cache: 'memory', 'redis', 'file' or 'none'")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address (redis cache)")
	serveCmd.Flags().Uint64("seed", 0, "Fixed seed for quiz generation (0 is random)")
}

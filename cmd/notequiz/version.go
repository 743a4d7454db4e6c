package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/notequiz"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notequiz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notequiz version %s\n", strings.TrimSpace(notequiz.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

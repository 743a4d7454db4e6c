package main

import (
	"fmt"

	"github.com/aretw0/notequiz/internal/presentation/graph"
	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the view transition graph",
	Long:  `Outputs a Mermaid diagram (graph TD) of the client views and the actions that move between them.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(graph.GenerateMermaid(domain.Transitions(), nil))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

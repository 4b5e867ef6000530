package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-connect4/internal/registry"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List all registered move providers",
	Long:  `Shows every move provider that can be used with --black and --white.`,
	Run:   runProviders,
}

func runProviders(cmd *cobra.Command, args []string) {
	names := registry.List()

	if len(names) == 0 {
		fmt.Println("No providers registered.")
		return
	}

	fmt.Println("Available providers:")
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'connect4 play --white <name>' to play against one.")
}

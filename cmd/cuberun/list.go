package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cuberun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available arenas",
	Long:  `Shows a list of all arenas registered in cuberun.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	arenas := registry.List()

	if len(arenas) == 0 {
		fmt.Println("No arenas available.")
		return
	}

	fmt.Println("Available arenas:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, a := range arenas {
		maxIDLen = max(maxIDLen, len(a.ID))
		maxTitleLen = max(maxTitleLen, len(a.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Blocks")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")

	for _, a := range arenas {
		fmt.Printf("  %-*s  %-*s  %d\n", maxIDLen, a.ID, maxTitleLen, a.Title, a.Obstacles)
	}

	fmt.Println()
	fmt.Println("Run 'cuberun play <id>' to play an arena.")
}

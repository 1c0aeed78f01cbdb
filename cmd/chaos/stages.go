package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/consulting-chaos/internal/registry"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the stages of a run",
	Long:  `Shows the four stages in play order with the ids accepted by 'chaos play --from'.`,
	Args:  cobra.NoArgs,
	Run:   runStages,
}

func runStages(cmd *cobra.Command, args []string) {
	stages := registry.List()

	if len(stages) == 0 {
		fmt.Println("No stages available.")
		return
	}

	fmt.Println("Stages:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, s := range stages {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxIDLen, "ID", "Title")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxIDLen, "--", "-----")
	for i, s := range stages {
		fmt.Printf("  %-3d  %-*s  %s\n", i+1, maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'chaos play --from <id>' to practice a stage.")
}

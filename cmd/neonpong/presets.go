package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the difficulty presets",
	Long:  `Shows the CPU difficulty presets from the active config, easiest first.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	presets, err := cfg.Registry()
	if err != nil {
		return err
	}

	list := presets.List()
	if len(list) == 0 {
		fmt.Println("No presets configured.")
		return nil
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := len("Name")
	for _, p := range list {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %9s  %8s  %6s  %5s\n", maxNameLen, "Name", "Max speed", "Reaction", "Jitter", "Miss")
	fmt.Printf("  %-*s  %9s  %8s  %6s  %5s\n", maxNameLen, "----", "---------", "--------", "------", "----")

	for _, p := range list {
		marker := " "
		if p.Name == cfg.Difficulty.Default {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %9.0f  %7.2fs  %6.0f  %4.1f%%\n",
			marker, maxNameLen, p.Name, p.MaxSpeed, p.Reaction, p.Jitter, p.Miss*100)
	}

	fmt.Println()
	fmt.Println("* default. Run 'neonpong play --difficulty <name>' to pick another.")
	return nil
}

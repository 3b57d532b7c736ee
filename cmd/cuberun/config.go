package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cuberun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective simulation config",
	Long: `Print the simulation config after applying --config and --difficulty.
The output is valid input for --config.

Examples:
  cuberun config > ~/.cuberun/configs/cube.yaml
  cuberun config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cube, err := loadCube()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cube)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

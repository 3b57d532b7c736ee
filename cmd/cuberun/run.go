package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cuberun/internal/arena"
	"github.com/vovakirdan/cuberun/internal/replay"
	"github.com/vovakirdan/cuberun/internal/sim"
)

var (
	flagTrace      bool
	flagDigestOnly bool
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Replay an input script headlessly",
	Long: `Run a YAML input script against a fresh simulation and print the
resulting snapshot. The same script always produces the same digest.

Script format:
  arena: meadow
  difficulty: normal
  steps:
    - cmd: start
    - move: 1
    - advance_ms: 500
    - checkpoint: halfway

Examples:
  cuberun run ./walk.yaml
  cuberun run ./walk.yaml --trace
  cuberun run ./walk.yaml --digest-only --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVar(&flagTrace, "trace", false, "Also print every checkpoint snapshot")
	runCmd.Flags().BoolVar(&flagDigestOnly, "digest-only", false, "Print only the final digest")
}

func runScript(_ *cobra.Command, args []string) error {
	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	if script.Arena == "" {
		script.Arena = arena.Default
	}

	cube, err := loadCube()
	if err != nil {
		return err
	}

	runner := replay.Runner{Logger: logger.WithPrefix("replay")}
	res, err := runner.Run(script, cube)
	if err != nil {
		return err
	}
	logger.Debug("replay finished", "arena", res.Arena, "ticks", res.Ticks, "events", len(res.Events))

	if flagDigestOnly {
		fmt.Printf("%016x\n", res.Digest())
		return nil
	}

	if flagTrace {
		for _, cp := range res.Checkpoints {
			fmt.Printf("# %s (step %d)\n", cp.Label, cp.Step)
			if err := printSnapshot(cp.Snapshot); err != nil {
				return err
			}
		}
		fmt.Println("# final")
	}
	if err := printSnapshot(res.Final); err != nil {
		return err
	}
	fmt.Printf("digest %016x\n", res.Digest())
	return nil
}

func printSnapshot(snap sim.Snapshot) error {
	data, err := snap.Rounded(2).JSON()
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

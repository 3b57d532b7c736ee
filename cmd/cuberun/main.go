// cuberun is a terminal block platformer: reach the gold cube, avoid the patrol.
//
// Usage:
//
//	cuberun list              - List available arenas
//	cuberun play [arena]      - Play an arena (arena picker when omitted)
//	cuberun run <script>      - Replay a YAML input script headlessly
//	cuberun serve             - Start SSH server for remote play
//	cuberun scores <arena>    - Show high scores and recent runs
//	cuberun config            - Print the effective simulation config
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--db <path>           - Set database path (default: ~/.cuberun/scores.db)
//	--config <path>       - Load simulation tuning from a YAML file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cuberun/internal/config"

	// Import arenas to register them
	_ "github.com/vovakirdan/cuberun/internal/arena"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "cuberun",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cuberun",
	Short: "Cuberun - a block platformer in your terminal",
	Long: `Cuberun is a small 3D block platformer simulated at a fixed 60 Hz
and drawn top-down in the terminal.

Available commands:
  list     - Show all available arenas
  play     - Play an arena
  run      - Replay an input script without a terminal
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the effective simulation config

Examples:
  cuberun list
  cuberun play meadow
  cuberun play --difficulty hard
  cuberun run ./walk.yaml --trace
  cuberun serve --ssh :2222
  cuberun scores meadow`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cuberun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom simulation config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadCube loads the simulation config and applies the difficulty flag.
func loadCube() (config.CubeConfig, error) {
	cfg, err := config.LoadCube(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, config.ParseDifficulty(flagDifficulty))
	return cfg, nil
}

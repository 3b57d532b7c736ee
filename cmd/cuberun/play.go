package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cuberun/internal/core"
	"github.com/vovakirdan/cuberun/internal/platform/tui"
	"github.com/vovakirdan/cuberun/internal/registry"
	"github.com/vovakirdan/cuberun/internal/storage"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play [arena]",
	Short: "Play an arena",
	Long: `Start playing the specified arena, or pick one from a menu.

Controls:
  W/Up, S/Down      - Move forward / back
  A/Left, D/Right   - Turn
  Space             - Jump
  Enter             - Start
  P                 - Pause
  R                 - Restart
  Esc               - Back to arena picker
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Terminals do not report key releases, so a key press is held for
--hold ticks and refreshed while the key repeats.

Difficulty options:
  easy   - Slow patrol, gentle score decay
  normal - Standard patrol speed
  hard   - Fast patrol, steep score decay
  fixed  - Keep the config's values

Examples:
  cuberun play
  cuberun play meadow
  cuberun play practice --difficulty easy
  cuberun play meadow --config ./my-cube.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a key press stays held")
}

func runPlay(_ *cobra.Command, args []string) error {
	arenaID := ""
	if len(args) > 0 {
		arenaID = args[0]
		if !registry.Exists(arenaID) {
			return fmt.Errorf("unknown arena %q, run 'cuberun list' to see available arenas", arenaID)
		}
	}

	cube, err := loadCube()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// Bubble Tea owns the terminal, so session logs are discarded
	opts := tui.Options{
		Arena:     arenaID,
		Cube:      cube,
		Runtime:   core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS},
		Store:     store,
		HoldTicks: flagHoldTicks,
	}

	if arenaID == "" {
		return tui.RunSession(opts)
	}
	return tui.Run(opts)
}

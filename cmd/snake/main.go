// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play on a 30x20 board
//	snake config             - Print the effective configuration as YAML
//
// Flags:
//
//	--config <path>     - Path to a config YAML
//	--width, --height   - Board size in cells
//	--tick <ms>         - Tick length in milliseconds
//	--seed <value>      - RNG seed for reproducible food placement
//	--ui term|tea       - Frontend: raw terminal or Bubble Tea
//	--no-color          - Disable colors
//	--log-file <path>   - Write logs to a file instead of stderr
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagTick     int
	flagSeed     int64
	flagUI       string
	flagNoColor  bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer the snake to eat the food. Each bite grows the snake by one and
scores a point. Hitting a wall or yourself ends the game; filling the whole
board wins it.

Controls:
  Arrows/WASD  - Steer
  Ctrl+C       - Quit

Examples:
  snake
  snake --width 20 --height 10 --tick 120
  snake --ui tea --seed 42
  snake config > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.IntVar(&flagWidth, "width", 30, "Board width in cells")
	flags.IntVar(&flagHeight, "height", 20, "Board height in cells")
	flags.IntVar(&flagTick, "tick", 200, "Tick length in milliseconds")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagUI, "ui", "term", "Frontend: term or tea")
	flags.BoolVar(&flagNoColor, "no-color", false, "Disable colors")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
}

// crossing is a lane-crossing arcade game for the terminal.
//
// Usage:
//
//	crossing list              - List available variants
//	crossing play [variant]    - Play a variant (default: crossing)
//	crossing menu              - Pick a variant and difficulty interactively
//	crossing serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Crossing - dodge bugs, match colours, collect gems",
	Long: `Crossing is a lane-crossing arcade game for the terminal.

Walk from the grass to the water across lanes of bugs. A bug that matches
your skin colour turns into a zombie for points; any other bug costs a life.
Zombies drop gems worth extra points.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant and difficulty picker
  serve    - Start SSH server for remote play

Examples:
  crossing play
  crossing play crossing_classic --difficulty hard
  crossing play --spectate :8080
  crossing menu
  crossing serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

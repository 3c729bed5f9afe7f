// neonpong is a neon pong game for the terminal against a predictive CPU
// opponent.
//
// Usage:
//
//	neonpong                 - Play (same as neonpong play)
//	neonpong play            - Play against the CPU
//	neonpong presets         - List the difficulty presets
//	neonpong serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Override the frame rate from the config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom config YAML
//	--log-file <path>   - Write logs to a file while the game runs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-pong/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonpong",
	Short: "Neon Pong - pong against a predictive CPU in your terminal",
	Long: `Neon Pong is a terminal pong game. You hold the left paddle with the
mouse or the keyboard; the CPU holds the right one and predicts where the
ball will arrive.

Available commands:
  play     - Play against the CPU (default)
  presets  - List the difficulty presets
  serve    - Start SSH server for remote play

Examples:
  neonpong
  neonpong play --difficulty hard --sound
  neonpong presets
  neonpong serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = display.fps from the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config and applies the global overrides.
func loadConfig() (config.Pong, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the logger. fallback receives the output when no
// --log-file is given. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "neonpong",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

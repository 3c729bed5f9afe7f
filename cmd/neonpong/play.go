package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pong/internal/audio"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/games/pong"
	"github.com/vovakirdan/neon-pong/internal/platform/tui"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

var (
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the CPU",
	Long: `Start a session. The game opens in the menu with the ball centred.

Controls:
  Mouse      - Move your paddle to the pointer
  W/S Up/Dn  - Move your paddle
  Enter      - Serve (from the menu)
  P          - Pause
  Esc        - Back to the menu
  1/2/3      - Easy / normal / hard CPU
  Tab        - Rally log (from the menu)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  neonpong play
  neonpong play --difficulty easy
  neonpong play --sound --log-file pong.log
  neonpong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (default: difficulty.default from the config)")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects (also enabled by audio.enabled)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:       width,
		ScreenH:       height,
		TickRate:      cfg.Display.FPS,
		MaxFrameDelta: cfg.MaxFrameDelta(),
		Seed:          flagSeed,
	}

	// One row is kept for the help line
	boardW, boardH := float64(width)*core.CellW, float64(height-1)*core.CellH
	if err := cfg.ValidateBoard(boardW, boardH); err != nil {
		return fmt.Errorf("terminal %dx%d is too small: %w", width, height, err)
	}

	presets, err := cfg.Registry()
	if err != nil {
		return err
	}
	preset := cfg.Difficulty.Default
	if flagDifficulty != "" {
		preset = flagDifficulty
	}
	game, err := pong.New(cfg.Settings(), presets, preset)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to --log-file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("rally log disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	var sound *audio.Player
	if flagSound || cfg.Audio.Enabled {
		sound = audio.NewPlayer()
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sound.Close()
		}
	}

	logger.Info("starting", "difficulty", preset, "fps", runtime.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	if err := tui.Run(game, store, sound, logger, runtime); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}

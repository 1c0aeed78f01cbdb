package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/consulting-chaos/internal/config"
	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/highscore"
	"github.com/vovakirdan/consulting-chaos/internal/platform/tui"
	"github.com/vovakirdan/consulting-chaos/internal/registry"
	"github.com/vovakirdan/consulting-chaos/internal/scene"
	"github.com/vovakirdan/consulting-chaos/internal/sfx"
	"github.com/vovakirdan/consulting-chaos/internal/storage"
)

var flagFrom string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run at the main menu, or jump straight into one stage.

Runs started past the first stage are practice runs and never reach the
leaderboard.

Controls:
  Enter/Space  - Start a stage, continue
  Arrows       - Move (Calendar Tetris, Friday Escape)
  Z/X          - Rotate (Calendar Tetris)
  Backspace    - Fix typing
  Esc          - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options (Friday Escape pursuit only):
  easy   - Slower partners, more random moves
  normal - Default pursuit
  hard   - Faster, more focused partners
  fixed  - Keep the config file values

Examples:
  chaos play
  chaos play --from calendar
  chaos play --seed 42 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrom, "from", "", "Start at this stage id (see 'chaos stages')")
}

// loadConfig reads the config file and applies the difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagSound {
		cfg.Sound.Enabled = true
	}
	return cfg, nil
}

// openBook opens the score database. A database failure is logged and the
// run continues with in-memory scores.
func openBook(logger *log.Logger) (*storage.Store, highscore.Persister) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil, nil
	}
	return store, store
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFrom != "" && !registry.Exists(flagFrom) {
		return fmt.Errorf("unknown stage %q; run 'chaos stages' to see available stages", flagFrom)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, logFile, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	store, persister := openBook(logger)
	if store != nil {
		defer store.Close()
	}
	book := highscore.Open(persister, logger)

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	rt.Seed = flagSeed
	rt.TickRate = cfg.Clock.TickRate
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}

	ctx := scene.NewRunContext(cfg, book, rt.Seed)
	ctx.Logger = logger

	if cfg.Sound.Enabled {
		spk, spkErr := sfx.NewSpeaker(cfg.Sound)
		if spkErr != nil {
			logger.Warn("sound disabled", "err", spkErr)
		} else {
			ctx.Sound = spk
			defer spk.Close()
		}
	}

	first, err := scene.Start(ctx, flagFrom)
	if err != nil {
		return err
	}
	machine := scene.NewMachine(ctx)
	machine.Switch(first)

	logger.Info("session started", "run", ctx.RunID, "from", flagFrom, "practice", ctx.Practice)
	if err := tui.Run(machine, rt); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended")
	return nil
}

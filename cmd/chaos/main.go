// chaos is a terminal game about surviving a consultant's Friday: four timed
// assessments played back to back against the clock.
//
// Usage:
//
//	chaos                    - Open the main menu (same as chaos play)
//	chaos play [--from id]   - Play a run, optionally starting at a stage
//	chaos stages             - List the stages
//	chaos scores [--plain]   - Show the leaderboard and personal bests
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.chaos/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Pursuit preset: easy, normal, hard, fixed
//	--log <path>          - Log file (default: ~/.chaos/chaos.log, empty disables)
//	--sound               - Enable synthesized sound cues
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chaos",
	Short: "Consulting Chaos - survive four deadlines in your terminal",
	Long: `Consulting Chaos is a terminal game of four timed assessments:

  Email Blast       type the client email exactly
  Excel Fire Drill  fix the broken spreadsheet by hand
  Calendar Tetris   fit the meetings into the calendar
  Friday Escape     leave the office before the partners catch you

Your run time is the sum of stage times and penalties. Lower is better.

Examples:
  chaos
  chaos play --difficulty hard
  chaos play --from escape
  chaos scores --plain`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.chaos/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Pursuit preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogPath, "log", "~/.chaos/chaos.log", "Log file path (empty disables logging)")
	pf.BoolVar(&flagSound, "sound", false, "Enable sound cues")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(scoresCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// openLogger builds the process logger. The alternate screen owns stdout, so
// logs go to a file. The returned closer is never nil.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	opts := log.Options{ReportTimestamp: true, Prefix: "chaos"}
	if path == "" {
		return log.NewWithOptions(io.Discard, opts), io.NopCloser(nil), nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}

	logger := log.NewWithOptions(f, opts)
	if os.Getenv("CHAOS_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

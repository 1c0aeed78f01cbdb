// Package config provides YAML-based stage configuration loading and
// difficulty presets for Consulting Chaos.
package config

// Config contains every tunable of the four stages and the loop.
type Config struct {
	Clock    ClockConfig    `yaml:"clock"`
	Notices  NoticeConfig   `yaml:"notices"`
	Email    EmailConfig    `yaml:"email"`
	Excel    ExcelConfig    `yaml:"excel"`
	Calendar CalendarConfig `yaml:"calendar"`
	Escape   EscapeConfig   `yaml:"escape"`
	Sound    SoundConfig    `yaml:"sound"`
}

// ClockConfig defines the update cadence.
type ClockConfig struct {
	TickRate int     `yaml:"tick_rate"`
	MaxDelta float64 `yaml:"max_delta"` // Seconds; larger frame gaps are clamped
}

// NoticeConfig defines transient on-screen notices.
type NoticeConfig struct {
	TTL     float64 `yaml:"ttl"`      // Seconds a notice stays visible
	MaxShow int     `yaml:"max_show"` // Newest notices drawn at once
}

// EmailConfig defines the Email Blast typing stage.
type EmailConfig struct {
	PenaltyPerMiss float64  `yaml:"penalty_per_miss"`
	MinLength      int      `yaml:"min_length"`
	MaxLength      int      `yaml:"max_length"`
	SeedPhrases    int      `yaml:"seed_phrases"` // Distinct phrases always sampled
	Phrases        []string `yaml:"phrases"`
}

// ExcelConfig defines the Excel Fire Drill arithmetic stage.
type ExcelConfig struct {
	Count        int     `yaml:"count"` // Correct answers needed
	WrongPenalty float64 `yaml:"wrong_penalty"`
	AddMin       int     `yaml:"add_min"` // Operand range for sums and differences
	AddMax       int     `yaml:"add_max"`
	MulMin       int     `yaml:"mul_min"` // Factor range for products and quotients
	MulMax       int     `yaml:"mul_max"`
}

// CalendarConfig defines the Calendar Tetris placement stage.
type CalendarConfig struct {
	GridW              int     `yaml:"grid_w"`
	GridH              int     `yaml:"grid_h"`
	QueueLength        int     `yaml:"queue_length"`
	TargetSeconds      float64 `yaml:"target_seconds"`
	OverPenaltyPer10s  float64 `yaml:"over_penalty_per_10s"`
	UnusedPiecePenalty float64 `yaml:"unused_piece_penalty"`
}

// EscapeConfig defines the Friday Escape chase stage.
type EscapeConfig struct {
	DecisionInterval float64 `yaml:"decision_interval"` // Seconds between agent moves
	Jitter           float64 `yaml:"jitter"`            // Probability of a random move
	TagPenalty       float64 `yaml:"tag_penalty"`
	Invulnerability  float64 `yaml:"invulnerability"` // Seconds of grace after a tag
}

// SoundConfig defines the synthesized sound cues.
type SoundConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

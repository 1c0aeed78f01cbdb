package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Consulting Chaos configuration.
// Search order: customPath -> ~/.chaos/configs/chaos.yaml -> ./configs/chaos.yaml -> embedded default.
// Only an explicit customPath that cannot be read or parsed is an error;
// every other source falls through to the next one.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("chaos.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "chaos.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultChaosYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults so that a partial file only
// overrides the keys it names.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	// A file that sets phrases replaces the list instead of merging into it.
	cfg.Email.Phrases = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Email.Phrases) == 0 {
		cfg.Email.Phrases = append([]string(nil), DefaultPhrases...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that would make a stage unplayable.
func (c Config) Validate() error {
	switch {
	case c.Clock.TickRate <= 0:
		return fmt.Errorf("clock.tick_rate must be positive, got %d", c.Clock.TickRate)
	case c.Notices.TTL < 0 || c.Notices.MaxShow < 0:
		return fmt.Errorf("notices ttl %f / max_show %d must not be negative", c.Notices.TTL, c.Notices.MaxShow)
	case c.Email.PenaltyPerMiss < 0:
		return fmt.Errorf("email.penalty_per_miss must not be negative, got %f", c.Email.PenaltyPerMiss)
	case c.Email.MinLength <= 0 || c.Email.MaxLength < c.Email.MinLength:
		return fmt.Errorf("email length range [%d, %d] is invalid", c.Email.MinLength, c.Email.MaxLength)
	case c.Excel.Count <= 0:
		return fmt.Errorf("excel.count must be positive, got %d", c.Excel.Count)
	case c.Excel.MulMin <= 0 || c.Excel.MulMax < c.Excel.MulMin:
		return fmt.Errorf("excel factor range [%d, %d] is invalid", c.Excel.MulMin, c.Excel.MulMax)
	case c.Excel.AddMax < c.Excel.AddMin:
		return fmt.Errorf("excel operand range [%d, %d] is invalid", c.Excel.AddMin, c.Excel.AddMax)
	case c.Excel.WrongPenalty < 0:
		return fmt.Errorf("excel.wrong_penalty must not be negative, got %f", c.Excel.WrongPenalty)
	case c.Calendar.GridW <= 0 || c.Calendar.GridH <= 0:
		return fmt.Errorf("calendar grid %dx%d is invalid", c.Calendar.GridW, c.Calendar.GridH)
	case c.Calendar.QueueLength <= 0:
		return fmt.Errorf("calendar.queue_length must be positive, got %d", c.Calendar.QueueLength)
	case c.Calendar.TargetSeconds < 0 || c.Calendar.OverPenaltyPer10s < 0 || c.Calendar.UnusedPiecePenalty < 0:
		return fmt.Errorf("calendar target and penalties must not be negative")
	case c.Escape.DecisionInterval <= 0:
		return fmt.Errorf("escape.decision_interval must be positive, got %f", c.Escape.DecisionInterval)
	case c.Escape.Jitter < 0 || c.Escape.Jitter > 1:
		return fmt.Errorf("escape.jitter must be within [0, 1], got %f", c.Escape.Jitter)
	case c.Escape.TagPenalty < 0:
		return fmt.Errorf("escape.tag_penalty must not be negative, got %f", c.Escape.TagPenalty)
	case c.Escape.Invulnerability < 0:
		return fmt.Errorf("escape.invulnerability must not be negative, got %f", c.Escape.Invulnerability)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chaos", "configs", filename)
}

// ApplyPreset modifies the Friday Escape pursuit tuning for a difficulty preset.
// Penalties are never touched so totals stay comparable across presets.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Escape.DecisionInterval = 0.7
		cfg.Escape.Jitter = 0.35
	case DifficultyNormal:
		cfg.Escape.DecisionInterval = 0.5
		cfg.Escape.Jitter = 0.2
	case DifficultyHard:
		cfg.Escape.DecisionInterval = 0.35
		cfg.Escape.Jitter = 0.1
	}
}

// ParsePreset converts a flag value to a preset. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyFixed:
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

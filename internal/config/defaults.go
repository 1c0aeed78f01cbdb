package config

import (
	_ "embed"
)

//go:embed defaults/chaos.yaml
var defaultChaosYAML []byte

// DefaultPhrases is the consulting jargon the typing target is built from.
var DefaultPhrases = []string{
	"Let's circle back post-standup and align on next steps.",
	"Driving synergy for cross-functional KPIs and stakeholder buy-in.",
	"Deck alignment before EOD, thanks for the quick turnaround.",
	"Can we socialize the roadmap ASAP and get feedback?",
	"Low-hanging fruit for Q4 quick wins and revenue impact.",
	"Double-click the assumptions and de-risk the approach.",
	"Let's park this and revisit offline with the team.",
	"Push the deck to green for tomorrow's steerco meeting.",
	"Need to deep-dive the data and validate assumptions.",
	"Schedule a sync to discuss the strategic implications.",
	"Moving forward with the recommended approach and timeline.",
	"Stakeholder alignment is critical for project success.",
	"Let's prioritize the high-impact initiatives first.",
	"Need to socialize this with leadership before proceeding.",
	"Quick wins will help build momentum for larger changes.",
}

// DefaultConfig returns the hardcoded configuration, used when neither a
// config file nor the embedded YAML can be read.
func DefaultConfig() Config {
	phrases := make([]string, len(DefaultPhrases))
	copy(phrases, DefaultPhrases)

	return Config{
		Clock: ClockConfig{
			TickRate: 60,
			MaxDelta: 1.0 / 15.0,
		},
		Notices: NoticeConfig{
			TTL:     1.5,
			MaxShow: 3,
		},
		Email: EmailConfig{
			PenaltyPerMiss: 0.3,
			MinLength:      145,
			MaxLength:      155,
			SeedPhrases:    3,
			Phrases:        phrases,
		},
		Excel: ExcelConfig{
			Count:        8,
			WrongPenalty: 1.0,
			AddMin:       5,
			AddMax:       99,
			MulMin:       3,
			MulMax:       12,
		},
		Calendar: CalendarConfig{
			GridW:              8,
			GridH:              8,
			QueueLength:        15,
			TargetSeconds:      60,
			OverPenaltyPer10s:  2.0,
			UnusedPiecePenalty: 10.0,
		},
		Escape: EscapeConfig{
			DecisionInterval: 0.5,
			Jitter:           0.2,
			TagPenalty:       2.0,
			Invulnerability:  1.0,
		},
		Sound: SoundConfig{
			Enabled:      false,
			SampleRate:   44100,
			MasterVolume: 0.5,
		},
	}
}

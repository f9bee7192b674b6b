// Package config loads romatype settings from a YAML file and the
// environment. Priority: ENV > YAML > defaults (via env-default tags).
package config

import (
	"time"

	"github.com/abhisek/romatype/internal/vocab"
)

// Config is the root application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Sound   SoundConfig   `yaml:"sound"`
}

// GameConfig holds the default tier and optional per-tier timing overrides.
type GameConfig struct {
	Difficulty string     `yaml:"difficulty" env:"ROMATYPE_DIFFICULTY" env-default:"normal"`
	Easy       TierConfig `yaml:"easy"       env-prefix:"ROMATYPE_EASY_"`
	Normal     TierConfig `yaml:"normal"     env-prefix:"ROMATYPE_NORMAL_"`
	Hard       TierConfig `yaml:"hard"       env-prefix:"ROMATYPE_HARD_"`
}

// TierConfig overrides the bundled timing of one tier. Zero keeps the default.
type TierConfig struct {
	PerWord time.Duration `yaml:"per_word" env:"PER_WORD"`
	Session time.Duration `yaml:"session"  env:"SESSION"`
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File  string `yaml:"file"  env:"ROMATYPE_LOG_FILE"`
	Level string `yaml:"level" env:"ROMATYPE_LOG_LEVEL" env-default:"info"`
}

// MetricsConfig holds the Prometheus endpoint settings. An empty Addr
// disables the endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"ROMATYPE_METRICS_ADDR"`
	Path string `yaml:"path" env:"ROMATYPE_METRICS_PATH" env-default:"/metrics"`
}

// SoundConfig controls the terminal bell. Kinds lists the event kinds that
// ring it; empty means the bell sink's defaults.
type SoundConfig struct {
	Mute  bool     `yaml:"mute"  env:"ROMATYPE_MUTE"`
	Kinds []string `yaml:"kinds" env:"ROMATYPE_BELL_KINDS" env-separator:","`
}

// DefaultDifficulty returns the configured starting tier.
func (c *Config) DefaultDifficulty() vocab.Difficulty {
	d, err := vocab.ParseDifficulty(c.Game.Difficulty)
	if err != nil {
		return vocab.Normal
	}
	return d
}

// Timings returns the bundled tier timings with the configured overrides
// applied on top.
func (c *Config) Timings() vocab.Timings {
	ts := vocab.DefaultTimings()
	for d, tc := range c.tiers() {
		t := ts[d]
		if tc.PerWord > 0 {
			t.PerWord = tc.PerWord
		}
		if tc.Session > 0 {
			t.Session = tc.Session
		}
		ts[d] = t
	}
	return ts
}

func (c *Config) tiers() map[vocab.Difficulty]TierConfig {
	return map[vocab.Difficulty]TierConfig{
		vocab.Easy:   c.Game.Easy,
		vocab.Normal: c.Game.Normal,
		vocab.Hard:   c.Game.Hard,
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/romatype/internal/game"
	"github.com/abhisek/romatype/internal/notify"
	"github.com/abhisek/romatype/internal/vocab"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	var problems []string

	if _, err := vocab.ParseDifficulty(c.Game.Difficulty); err != nil {
		problems = append(problems, fmt.Sprintf("game.difficulty: %v", err))
	}
	for _, d := range vocab.AllDifficulties() {
		if err := c.tiers()[d].validate(); err != nil {
			problems = append(problems, fmt.Sprintf("game.%s: %v", d, err))
		}
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level: %v", err))
	}

	if c.Metrics.Addr != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, fmt.Sprintf("metrics.path must start with / (got %q)", c.Metrics.Path))
	}

	for _, k := range c.Sound.Kinds {
		if _, err := notify.ParseKind(k); err != nil {
			problems = append(problems, fmt.Sprintf("sound.kinds: %v", err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(problems, "\n  "))
	}
	return nil
}

func (t TierConfig) validate() error {
	if t.PerWord != 0 {
		if t.PerWord < game.WordTickInterval {
			return fmt.Errorf("per_word must be at least %s (got %s)", game.WordTickInterval, t.PerWord)
		}
		if t.PerWord%game.WordTickInterval != 0 {
			return fmt.Errorf("per_word must be a multiple of %s (got %s)", game.WordTickInterval, t.PerWord)
		}
	}
	if t.Session != 0 {
		if t.Session < time.Second {
			return fmt.Errorf("session must be at least 1s (got %s)", t.Session)
		}
		if t.Session%time.Second != 0 {
			return fmt.Errorf("session must be whole seconds (got %s)", t.Session)
		}
	}
	return nil
}

// BellKinds returns the event kinds that ring the bell, or nil to use the
// sink's defaults. Unknown names are skipped; Validate reports them.
func (c *Config) BellKinds() []notify.Kind {
	var kinds []notify.Kind
	for _, name := range c.Sound.Kinds {
		if k, err := notify.ParseKind(name); err == nil {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

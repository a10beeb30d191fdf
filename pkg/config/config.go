// Package config handles poliz.toml engine limits.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	DefaultMaxTokenLength  = 63
	DefaultMaxInstructions = 1 << 20
)

// Limits bounds the resources a compile or a run may claim. Exceeding
// MaxInstructions or MaxStackDepth is reported as an out-of-memory
// condition.
type Limits struct {
	MaxTokenLength  int `toml:"max-token-length"`
	MaxInstructions int `toml:"max-instructions"`
	MaxStackDepth   int `toml:"max-stack-depth"` // 0 means unbounded
}

// Default returns the limits used when no configuration is given.
func Default() Limits {
	return Limits{
		MaxTokenLength:  DefaultMaxTokenLength,
		MaxInstructions: DefaultMaxInstructions,
	}
}

// Parse decodes TOML limits. Unset keys keep their defaults.
func Parse(data []byte) (Limits, error) {
	lim := Default()
	if _, err := toml.Decode(string(data), &lim); err != nil {
		return Limits{}, fmt.Errorf("config: parse error: %w", err)
	}
	if err := lim.Validate(); err != nil {
		return Limits{}, err
	}
	return lim.WithDefaults(), nil
}

// Load reads limits from a TOML file.
func Load(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	lim, err := Parse(data)
	if err != nil {
		return Limits{}, fmt.Errorf("%s: %w", path, err)
	}
	return lim, nil
}

// Validate rejects negative limits.
func (l Limits) Validate() error {
	switch {
	case l.MaxTokenLength < 0:
		return fmt.Errorf("config: max-token-length must not be negative, got %d", l.MaxTokenLength)
	case l.MaxInstructions < 0:
		return fmt.Errorf("config: max-instructions must not be negative, got %d", l.MaxInstructions)
	case l.MaxStackDepth < 0:
		return fmt.Errorf("config: max-stack-depth must not be negative, got %d", l.MaxStackDepth)
	}
	return nil
}

// WithDefaults fills zero token and instruction limits with the defaults.
// A zero MaxStackDepth stays unbounded.
func (l Limits) WithDefaults() Limits {
	if l.MaxTokenLength == 0 {
		l.MaxTokenLength = DefaultMaxTokenLength
	}
	if l.MaxInstructions == 0 {
		l.MaxInstructions = DefaultMaxInstructions
	}
	return l
}

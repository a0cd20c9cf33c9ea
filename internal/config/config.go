// Package config loads the YAML configuration of the demo runtime.
package config

import (
	"errors"
	"fmt"
	"os"

	"rgehrsitz/reflex/pkg/rules"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level configuration.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Console  bool   `yaml:"console"`

	Rules      RulesConfig      `yaml:"rules"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// RulesConfig parameterizes the rule registry.
type RulesConfig struct {
	Threshold         int    `yaml:"threshold"`
	CriticalThreshold int    `yaml:"critical_threshold"`
	HealingKind       string `yaml:"healing_kind"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
}

// SimulationConfig describes the demo actor and loop.
type SimulationConfig struct {
	Hero      string         `yaml:"hero"`
	MaxHealth int            `yaml:"max_health"`
	Damage    int            `yaml:"damage"`
	Ticks     int            `yaml:"ticks"`
	Inventory map[string]int `yaml:"inventory"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Console:  true,
		Rules: RulesConfig{
			Threshold:         rules.DefaultLowHealthThreshold,
			CriticalThreshold: 3,
			HealingKind:       string(rules.KindHealing),
		},
		Metrics: MetricsConfig{
			Address: ":9464",
		},
		Simulation: SimulationConfig{
			Hero:      "warrior",
			MaxHealth: 30,
			Damage:    4,
			Ticks:     12,
			Inventory: map[string]int{string(rules.KindHealing): 1},
		},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.Rules.Threshold <= 0 {
		return fmt.Errorf("%w: rules.threshold must be positive, got %d", ErrInvalidConfig, c.Rules.Threshold)
	}
	if err := c.Registry().Validate(); err != nil {
		return fmt.Errorf("%w: rules: %v", ErrInvalidConfig, err)
	}
	if c.Rules.CriticalThreshold < 0 {
		return fmt.Errorf("%w: rules.critical_threshold must not be negative", ErrInvalidConfig)
	}
	if c.Rules.HealingKind == "" {
		return fmt.Errorf("%w: rules.healing_kind is required", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Address == "" {
		return fmt.Errorf("%w: metrics.address is required when metrics are enabled", ErrInvalidConfig)
	}
	if c.Simulation.MaxHealth <= 0 {
		return fmt.Errorf("%w: simulation.max_health must be positive", ErrInvalidConfig)
	}
	if c.Simulation.Damage < 0 {
		return fmt.Errorf("%w: simulation.damage must not be negative", ErrInvalidConfig)
	}
	if c.Simulation.Ticks < 0 {
		return fmt.Errorf("%w: simulation.ticks must not be negative", ErrInvalidConfig)
	}
	for kind, count := range c.Simulation.Inventory {
		if count < 0 {
			return fmt.Errorf("%w: simulation.inventory[%s] must not be negative", ErrInvalidConfig, kind)
		}
	}
	return nil
}

// Level returns the parsed log level. Validate has already checked it.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Registry builds the rule registry described by the configuration.
func (c Config) Registry() rules.Registry {
	return rules.Registry{
		Threshold:   c.Rules.Threshold,
		HealingKind: rules.ItemKind(c.Rules.HealingKind),
	}
}

// Inventory converts the configured inventory to item kinds.
func (c Config) Inventory() map[rules.ItemKind]int {
	inventory := make(map[rules.ItemKind]int, len(c.Simulation.Inventory))
	for kind, count := range c.Simulation.Inventory {
		inventory[rules.ItemKind(kind)] = count
	}
	return inventory
}

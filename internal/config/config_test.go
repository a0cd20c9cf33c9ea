package config

import (
	"os"
	"path/filepath"
	"testing"

	"rgehrsitz/reflex/pkg/rules"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.Equal(t, rules.Registry{Threshold: 10, HealingKind: rules.KindHealing}, cfg.Registry())
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
log_level: debug
rules:
  threshold: 20
  healing_kind: elixir
simulation:
  max_health: 40
  ticks: 3
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, 20, cfg.Rules.Threshold)
	assert.Equal(t, 3, cfg.Rules.CriticalThreshold, "unset fields keep defaults")
	assert.Equal(t, rules.ItemKind("elixir"), cfg.Registry().HealingKind)
	assert.Equal(t, 40, cfg.Simulation.MaxHealth)
	assert.Equal(t, 4, cfg.Simulation.Damage)
	assert.Equal(t, 3, cfg.Simulation.Ticks)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":           "rules: [",
		"bad level":          "log_level: loud",
		"negative threshold": "rules:\n  threshold: -1",
		"zero threshold":     "rules:\n  threshold: 0",
		"empty kind":         "rules:\n  healing_kind: \"\"",
		"metrics no address": "metrics:\n  enabled: true\n  address: \"\"",
		"zero health":        "simulation:\n  max_health: 0",
		"negative damage":    "simulation:\n  damage: -2",
		"negative inventory": "simulation:\n  inventory:\n    healing: -1",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}

	_, err := Parse([]byte("log_level: loud"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse([]byte("rules:\n  threshold: 0"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "rules.threshold must be positive")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reflex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  hero: mage\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mage", cfg.Simulation.Hero)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInventory(t *testing.T) {
	cfg := Default()
	cfg.Simulation.Inventory = map[string]int{"healing": 2, "mana": 1}
	assert.Equal(t, map[rules.ItemKind]int{rules.KindHealing: 2, "mana": 1}, cfg.Inventory())
}

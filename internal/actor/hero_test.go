package actor

import (
	"testing"

	"rgehrsitz/reflex/pkg/rules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type otherState struct{}

func (otherState) Health() int                      { return 0 }
func (otherState) HasItemOfKind(rules.ItemKind) bool { return false }

func TestHero_StateView(t *testing.T) {
	hero := NewHero("warrior", 30, map[rules.ItemKind]int{rules.KindHealing: 1, "mana": 0})
	assert.Equal(t, 30, hero.Health())
	assert.True(t, hero.HasItemOfKind(rules.KindHealing))
	assert.False(t, hero.HasItemOfKind("mana"))

	hero.Damage(40)
	assert.Equal(t, 0, hero.Health())
}

func TestHero_Consume(t *testing.T) {
	hero := NewHero("warrior", 30, map[rules.ItemKind]int{rules.KindHealing: 1})
	hero.Damage(25)

	require.NoError(t, hero.Consume(rules.KindHealing))
	assert.Equal(t, 20, hero.Health())
	assert.False(t, hero.HasItemOfKind(rules.KindHealing))

	err := hero.Consume(rules.KindHealing)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestHero_ConsumeCapsAtMax(t *testing.T) {
	hero := NewHero("warrior", 30, map[rules.ItemKind]int{rules.KindHealing: 1})
	hero.Damage(5)
	require.NoError(t, hero.Consume(rules.KindHealing))
	assert.Equal(t, 30, hero.Health())
}

func TestDrinkAction(t *testing.T) {
	hero := NewHero("warrior", 30, map[rules.ItemKind]int{rules.KindHealing: 2})
	hero.Damage(28)

	drink := DrinkAction(rules.KindHealing)
	require.NoError(t, drink(hero))
	assert.Equal(t, 17, hero.Health())
	assert.Equal(t, 1, hero.Inventory[rules.KindHealing])

	assert.Error(t, drink(otherState{}))
}

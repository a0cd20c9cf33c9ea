// internal/actor/hero.go

package actor

import (
	"errors"
	"fmt"

	"rgehrsitz/reflex/pkg/rules"
)

// ErrItemNotFound is returned when consuming an item the hero does not carry.
var ErrItemNotFound = errors.New("item not found")

// HealAmount is the health restored by one healing item.
const HealAmount = 15

// Hero is a minimal in-memory actor used by the demo binary and tests.
type Hero struct {
	Name      string
	HP        int
	MaxHP     int
	Inventory map[rules.ItemKind]int

	// HealingKind is the item kind that restores health when consumed.
	HealingKind rules.ItemKind
}

// NewHero creates a hero at full health with the given inventory counts.
func NewHero(name string, maxHP int, inventory map[rules.ItemKind]int) *Hero {
	items := make(map[rules.ItemKind]int, len(inventory))
	for kind, count := range inventory {
		if count > 0 {
			items[kind] = count
		}
	}
	return &Hero{Name: name, HP: maxHP, MaxHP: maxHP, Inventory: items, HealingKind: rules.KindHealing}
}

func (h *Hero) Health() int {
	return h.HP
}

func (h *Hero) HasItemOfKind(kind rules.ItemKind) bool {
	return h.Inventory[kind] > 0
}

// Damage lowers health, never below zero.
func (h *Hero) Damage(amount int) {
	h.HP -= amount
	if h.HP < 0 {
		h.HP = 0
	}
}

// Consume removes one item of kind and, for healing items, restores health.
func (h *Hero) Consume(kind rules.ItemKind) error {
	if h.Inventory[kind] <= 0 {
		return fmt.Errorf("hero '%s' cannot consume %s: %w", h.Name, kind, ErrItemNotFound)
	}
	h.Inventory[kind]--
	if h.Inventory[kind] == 0 {
		delete(h.Inventory, kind)
	}
	if kind == h.HealingKind {
		h.HP += HealAmount
		if h.HP > h.MaxHP {
			h.HP = h.MaxHP
		}
	}
	return nil
}

// DrinkAction returns a rule action that consumes one item of kind from
// the hero behind the state.
func DrinkAction(kind rules.ItemKind) func(rules.State) error {
	return func(state rules.State) error {
		hero, ok := state.(*Hero)
		if !ok {
			return fmt.Errorf("drink %s: unsupported state type %T", kind, state)
		}
		return hero.Consume(kind)
	}
}

// pkg/rules/state.go

package rules

// ItemKind identifies a category of inventory item, e.g. "healing".
type ItemKind string

const (
	// KindHealing is the item kind the default rules look for.
	KindHealing ItemKind = "healing"
)

// DefaultLowHealthThreshold is the health value below which the default rules fire.
const DefaultLowHealthThreshold = 10

// State is the read-only view of an actor that rule conditions inspect.
// The actor model behind it belongs to the embedding system; only a rule's
// Apply may change the actor, and it does so through its own handle.
type State interface {
	Health() int
	HasItemOfKind(kind ItemKind) bool
}

// pkg/rules/healing.go

package rules

const (
	HealingResourceAvailableMessage   = "Warning: Low health! Using healing potion."
	NoHealingResourceAvailableMessage = "No healing potion"
)

// HealingResourceAvailable matches when health is below Threshold and the
// inventory holds at least one item of Kind. Zero fields fall back to
// DefaultLowHealthThreshold and KindHealing.
type HealingResourceAvailable struct {
	Threshold int
	Kind      ItemKind
}

func (HealingResourceAvailable) Name() string {
	return "healing_resource_available"
}

func (r HealingResourceAvailable) Evaluate(state State) (bool, error) {
	return state.Health() < thresholdOrDefault(r.Threshold) && state.HasItemOfKind(kindOrDefault(r.Kind)), nil
}

func (HealingResourceAvailable) Apply(State) error {
	return nil
}

func (HealingResourceAvailable) Describe() string {
	return HealingResourceAvailableMessage
}

// NoHealingResourceAvailable matches when health is below Threshold and the
// inventory holds no item of Kind.
type NoHealingResourceAvailable struct {
	Threshold int
	Kind      ItemKind
}

func (NoHealingResourceAvailable) Name() string {
	return "no_healing_resource_available"
}

func (r NoHealingResourceAvailable) Evaluate(state State) (bool, error) {
	return state.Health() < thresholdOrDefault(r.Threshold) && !state.HasItemOfKind(kindOrDefault(r.Kind)), nil
}

func (NoHealingResourceAvailable) Apply(State) error {
	return nil
}

func (NoHealingResourceAvailable) Describe() string {
	return NoHealingResourceAvailableMessage
}

func thresholdOrDefault(threshold int) int {
	if threshold == 0 {
		return DefaultLowHealthThreshold
	}
	return threshold
}

func kindOrDefault(kind ItemKind) ItemKind {
	if kind == "" {
		return KindHealing
	}
	return kind
}

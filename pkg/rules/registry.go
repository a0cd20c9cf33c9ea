// pkg/rules/registry.go

package rules

import "fmt"

// RuleSet is an ordered sequence of rules. Order is significant: the first
// matching rule wins.
type RuleSet []Rule

// Clone returns a copy backed by a fresh array, so appends to either copy
// are not visible in the other.
func (s RuleSet) Clone() RuleSet {
	if s == nil {
		return nil
	}
	clone := make(RuleSet, len(s))
	copy(clone, s)
	return clone
}

func (s RuleSet) Len() int {
	return len(s)
}

// Names lists the rule names in order.
func (s RuleSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, r := range s {
		names = append(names, r.Name())
	}
	return names
}

// Registry builds the default rule set. A zero Threshold means
// DefaultLowHealthThreshold and an empty HealingKind means KindHealing, so a
// threshold of 0 cannot be expressed.
type Registry struct {
	Threshold   int
	HealingKind ItemKind
}

// Validate checks the registry settings.
func (r Registry) Validate() error {
	if r.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d", r.Threshold)
	}
	return nil
}

// CreateDefault returns a newly allocated
// [HealingResourceAvailable, NoHealingResourceAvailable] set.
func (r Registry) CreateDefault() RuleSet {
	return RuleSet{
		HealingResourceAvailable{Threshold: r.Threshold, Kind: r.HealingKind},
		NoHealingResourceAvailable{Threshold: r.Threshold, Kind: r.HealingKind},
	}
}

// CreateDefault builds the default rule set with default settings.
func CreateDefault() RuleSet {
	return Registry{}.CreateDefault()
}

// pkg/rules/resource.go

package rules

import "fmt"

// ResourceLow is a resource-kind-generic rule: it matches when health
// compares true against Threshold under Operator and the inventory holds an
// item of Kind. Use, if set, is run as the rule's action.
type ResourceLow struct {
	RuleName  string
	Operator  string
	Threshold int
	Kind      ItemKind
	Message   string
	Use       func(State) error
}

func (r ResourceLow) Name() string {
	if r.RuleName != "" {
		return r.RuleName
	}
	return fmt.Sprintf("resource_low_%s", r.Kind)
}

func (r ResourceLow) Evaluate(state State) (bool, error) {
	operator := r.Operator
	if operator == "" {
		operator = OperatorLessThan
	}
	below, err := CompareInt(operator, state.Health(), r.Threshold)
	if err != nil {
		return false, fmt.Errorf("rule '%s': %w", r.Name(), err)
	}
	return below && state.HasItemOfKind(r.Kind), nil
}

func (r ResourceLow) Apply(state State) error {
	if r.Use == nil {
		return nil
	}
	return r.Use(state)
}

func (r ResourceLow) Describe() string {
	return r.Message
}

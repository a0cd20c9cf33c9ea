// pkg/rules/rule.go

package rules

// Rule is a single condition/action/message unit.
//
// Evaluate must not mutate the state. Apply runs only after Evaluate returned
// true and may change the actor behind the state. Describe returns the fixed
// notification message for the rule.
type Rule interface {
	Name() string
	Evaluate(state State) (bool, error)
	Apply(state State) error
	Describe() string
}

// Func is a rule assembled from plain functions. A nil Condition never
// matches and a nil Action does nothing.
type Func struct {
	RuleName  string
	Condition func(State) (bool, error)
	Action    func(State) error
	Message   string
}

func (f Func) Name() string {
	if f.RuleName == "" {
		return "func"
	}
	return f.RuleName
}

func (f Func) Evaluate(state State) (bool, error) {
	if f.Condition == nil {
		return false, nil
	}
	return f.Condition(state)
}

func (f Func) Apply(state State) error {
	if f.Action == nil {
		return nil
	}
	return f.Action(state)
}

func (f Func) Describe() string {
	return f.Message
}

// When adapts an infallible predicate for use as a Func condition.
func When(pred func(State) bool) func(State) (bool, error) {
	return func(s State) (bool, error) {
		return pred(s), nil
	}
}

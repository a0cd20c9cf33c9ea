// pkg/runtime/observer.go

package runtime

// Observer is notified of evaluation events. Implementations must be cheap;
// they run inline inside Evaluate.
type Observer interface {
	RuleAdded(evaluator string, total int)
	Evaluated(outcome Outcome)
	ConditionFailed(rule string)
	ActionFailed(rule string)
}

type nopObserver struct{}

func (nopObserver) RuleAdded(string, int)  {}
func (nopObserver) Evaluated(Outcome)      {}
func (nopObserver) ConditionFailed(string) {}
func (nopObserver) ActionFailed(string)    {}

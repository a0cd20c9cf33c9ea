// pkg/runtime/errors.go

package runtime

import (
	"errors"
	"fmt"
)

// ErrRulePanicked marks a condition or action that panicked instead of
// returning an error.
var ErrRulePanicked = errors.New("rule panicked")

// ConditionEvaluationError reports a condition check that failed. The
// evaluator treats the rule as not matching and moves on.
type ConditionEvaluationError struct {
	Rule  string
	Index int
	Err   error
}

func (e *ConditionEvaluationError) Error() string {
	return fmt.Sprintf("condition of rule '%s' at index %d failed: %v", e.Rule, e.Index, e.Err)
}

func (e *ConditionEvaluationError) Unwrap() error {
	return e.Err
}

// ActionExecutionError reports an action that failed after its condition
// matched. The actor may be partially modified; nothing is rolled back.
type ActionExecutionError struct {
	Rule  string
	Index int
	Err   error
}

func (e *ActionExecutionError) Error() string {
	return fmt.Sprintf("action of rule '%s' at index %d failed: %v", e.Rule, e.Index, e.Err)
}

func (e *ActionExecutionError) Unwrap() error {
	return e.Err
}

func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrRulePanicked, err)
	}
	return fmt.Errorf("%w: %v", ErrRulePanicked, r)
}

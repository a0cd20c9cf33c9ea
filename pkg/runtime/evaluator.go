// pkg/runtime/evaluator.go

package runtime

import (
	"rgehrsitz/reflex/pkg/rules"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Outcome is the result of one Evaluate call.
type Outcome struct {
	Matched bool
	Index   int
	Rule    string
	Message string
}

// NoMatch is the outcome when no rule's condition held.
var NoMatch = Outcome{Index: -1}

// Evaluator runs the first-match protocol over the rule set it owns.
//
// An Evaluator is not safe for concurrent use. Callers that share one across
// goroutines must serialize AddRule and Evaluate themselves; the simpler
// deployment is one Evaluator per actor.
type Evaluator struct {
	id       string
	rules    rules.RuleSet
	sink     Sink
	observer Observer
	logger   zerolog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger used for evaluation diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// WithObserver registers an observer. A nil observer is ignored.
func WithObserver(observer Observer) Option {
	return func(e *Evaluator) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// WithID overrides the generated evaluator ID used in log context.
func WithID(id string) Option {
	return func(e *Evaluator) {
		e.id = id
	}
}

// NewEvaluator creates an evaluator that takes ownership of set. Callers that
// keep using set afterwards should pass set.Clone() instead. Nil rules are
// dropped. A nil sink discards messages.
func NewEvaluator(set rules.RuleSet, sink Sink, opts ...Option) *Evaluator {
	if sink == nil {
		sink = DiscardSink
	}
	e := &Evaluator{
		id:       uuid.NewString(),
		sink:     sink,
		observer: nopObserver{},
		logger:   log.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With().Str("evaluator", e.id).Logger()

	e.rules = set[:0]
	for i, r := range set {
		if r == nil {
			e.logger.Warn().Int("index", i).Msg("Ignoring nil rule")
			continue
		}
		e.rules = append(e.rules, r)
	}
	e.observer.RuleAdded(e.id, len(e.rules))
	return e
}

// ID returns the evaluator's identifier.
func (e *Evaluator) ID() string {
	return e.id
}

// AddRule appends r to the end of the rule set. It takes effect from the
// next Evaluate call.
func (e *Evaluator) AddRule(r rules.Rule) {
	if r == nil {
		e.logger.Warn().Msg("Ignoring nil rule")
		return
	}
	e.rules = append(e.rules, r)
	e.observer.RuleAdded(e.id, len(e.rules))
	e.logger.Debug().Str("rule", ruleName(r)).Int("total", len(e.rules)).Msg("Rule added")
}

// Len returns the number of rules held.
func (e *Evaluator) Len() int {
	return len(e.rules)
}

// Rules returns a copy of the current rule set.
func (e *Evaluator) Rules() rules.RuleSet {
	return e.rules.Clone()
}

// Evaluate checks the rules in registration order. The first rule whose
// condition holds has its action applied and its message emitted, and no
// further rules are checked. A failing condition counts as false for that
// rule only. A failing action is returned as *ActionExecutionError and its
// message is not emitted.
func (e *Evaluator) Evaluate(state rules.State) (Outcome, error) {
	for i, r := range e.rules {
		name := ruleName(r)
		matched, err := checkCondition(i, name, r, state)
		if err != nil {
			e.logger.Warn().Err(err).Str("rule", name).Int("index", i).Msg("Condition failed, treating as no match")
			e.observer.ConditionFailed(name)
			continue
		}
		if !matched {
			continue
		}

		outcome := Outcome{Matched: true, Index: i, Rule: name}
		message, err := applyAction(i, name, r, state)
		if err != nil {
			e.logger.Error().Err(err).Str("rule", name).Int("index", i).Msg("Action failed")
			e.observer.ActionFailed(name)
			return outcome, err
		}
		outcome.Message = message

		e.logger.Debug().Str("rule", name).Int("index", i).Msg("Rule fired")
		e.sink.Emit(outcome.Message)
		e.sink.Emit("")
		e.observer.Evaluated(outcome)
		return outcome, nil
	}

	e.observer.Evaluated(NoMatch)
	return NoMatch, nil
}

// unnamedRule labels rules whose Name panics.
const unnamedRule = "unnamed"

func ruleName(r rules.Rule) (name string) {
	defer func() {
		if recover() != nil {
			name = unnamedRule
		}
	}()
	return r.Name()
}

func checkCondition(index int, name string, r rules.Rule, state rules.State) (matched bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			matched = false
			err = &ConditionEvaluationError{Rule: name, Index: index, Err: panicError(p)}
		}
	}()

	matched, err = r.Evaluate(state)
	if err != nil {
		return false, &ConditionEvaluationError{Rule: name, Index: index, Err: err}
	}
	return matched, nil
}

// applyAction runs the action and then reads the message, both under the
// same panic guard.
func applyAction(index int, name string, r rules.Rule, state rules.State) (message string, err error) {
	defer func() {
		if p := recover(); p != nil {
			message = ""
			err = &ActionExecutionError{Rule: name, Index: index, Err: panicError(p)}
		}
	}()

	if err := r.Apply(state); err != nil {
		return "", &ActionExecutionError{Rule: name, Index: index, Err: err}
	}
	return r.Describe(), nil
}

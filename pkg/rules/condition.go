// pkg/rules/condition.go

package rules

import (
	"errors"
	"fmt"
)

const (
	OperatorEqual              = "equal"
	OperatorNotEqual           = "notEqual"
	OperatorGreaterThan        = "greaterThan"
	OperatorGreaterThanOrEqual = "greaterThanOrEqual"
	OperatorLessThan           = "lessThan"
	OperatorLessThanOrEqual    = "lessThanOrEqual"
)

var SupportedOperators = []string{
	OperatorEqual,
	OperatorNotEqual,
	OperatorGreaterThan,
	OperatorGreaterThanOrEqual,
	OperatorLessThan,
	OperatorLessThanOrEqual,
}

// ErrUnsupportedOperator is returned when a comparison names an operator
// outside SupportedOperators.
var ErrUnsupportedOperator = errors.New("unsupported operator")

// IsValidOperator reports whether operator is one of SupportedOperators.
func IsValidOperator(operator string) bool {
	for _, supported := range SupportedOperators {
		if operator == supported {
			return true
		}
	}
	return false
}

// CompareInt applies operator to actual and expected.
func CompareInt(operator string, actual, expected int) (bool, error) {
	switch operator {
	case OperatorEqual:
		return actual == expected, nil
	case OperatorNotEqual:
		return actual != expected, nil
	case OperatorGreaterThan:
		return actual > expected, nil
	case OperatorGreaterThanOrEqual:
		return actual >= expected, nil
	case OperatorLessThan:
		return actual < expected, nil
	case OperatorLessThanOrEqual:
		return actual <= expected, nil
	default:
		return false, fmt.Errorf("%w '%s'", ErrUnsupportedOperator, operator)
	}
}

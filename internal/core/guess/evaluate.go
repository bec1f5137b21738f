// Package guess implements the comparison logic for the hi-low game.
package guess

import (
	"errors"
	"fmt"
)

// Outcome represents the result of comparing a guess against the target.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeHigh
	OutcomeLow
)

// String returns the outcome label emitted to the player, one of
// "correct", "high", or "low".
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeHigh:
		return "high"
	case OutcomeLow:
		return "low"
	default:
		return "unknown"
	}
}

// ErrInvalidBounds indicates the declared range is inverted.
var ErrInvalidBounds = errors.New("min must not exceed max")

// ErrTargetOutOfRange indicates the target lies outside the declared range.
var ErrTargetOutOfRange = errors.New("target outside declared range")

// Evaluate compares a guess against the target value.
//
// It returns OutcomeCorrect when the guess equals the target, OutcomeHigh
// when the guess is greater, and OutcomeLow when the guess is smaller.
// Exactly one of the three holds for any pair of integers. Evaluate has no
// state and no side effects; repeated calls with the same arguments always
// yield the same outcome.
func Evaluate(target, guess int) Outcome {
	switch {
	case guess == target:
		return OutcomeCorrect
	case guess > target:
		return OutcomeHigh
	default:
		return OutcomeLow
	}
}

// ValidateTarget reports whether target lies within the closed range
// [min, max]. It returns ErrInvalidBounds when min > max and
// ErrTargetOutOfRange when the target falls outside the range; both errors
// carry the offending value and the declared bounds.
func ValidateTarget(target, min, max int) error {
	if min > max {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidBounds, min, max)
	}
	if target < min || target > max {
		return fmt.Errorf("%w: target %d not in [%d, %d]", ErrTargetOutOfRange, target, min, max)
	}
	return nil
}

// EvaluateInRange compares a guess against the target value after
// validating that the target lies within [min, max]. On a validation
// failure the comparison is never performed. Only the target is validated,
// never the guess.
func EvaluateInRange(target, guess, min, max int) (Outcome, error) {
	if err := ValidateTarget(target, min, max); err != nil {
		return 0, err
	}
	return Evaluate(target, guess), nil
}

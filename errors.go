package polyroot

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every error reporting a violated caller
// contract. Numeric degeneracies are never errors; they show up only in the
// returned root count.
var ErrInvalidInput = errors.New("polyroot: invalid input")

// Reasons carried by InputError.
const (
	ReasonCoefficientCount = "coefficient count does not match degree"
	ReasonZeroLeading      = "zero leading coefficient"
	ReasonShortBuffer      = "root buffer shorter than degree"
)

// InputError is returned by the checked solvers when the coefficients or the
// root buffer violate the solver contract.
type InputError struct {
	Op     string
	Degree int
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("polyroot: %s (degree %d): %s", e.Op, e.Degree, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for every InputError.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidShape is matched by every ShapeError.
var ErrInvalidShape = errors.New("geom: invalid shape")

// ShapeError is returned by shape constructors when a parameter is out of range.
type ShapeError struct {
	Shape string
	Param string
	Value float64
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("geom: invalid %s: %s = %g", e.Shape, e.Param, e.Value)
}

func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}

package dataset

import (
	"fmt"

	"github.com/pkg/errors"
)

// Parameter errors returned by Linspace and Generator.Moons.
var (
	// ErrInvalidInterval indicates an interval whose start is not strictly below its stop,
	// or one with an infinite bound.
	ErrInvalidInterval = errors.New("dataset: interval bounds must be finite with start strictly less than stop")

	// ErrTooFewSamples indicates a sample count below 2.
	ErrTooFewSamples = errors.New("dataset: at least 2 samples are required")

	// ErrNegativeNoise indicates a noise standard deviation that is negative, NaN or infinite.
	ErrNegativeNoise = errors.New("dataset: noise standard deviation must be finite and >= 0")
)

// ParamError wraps a parameter error with the operation and offending value.
type ParamError struct {
	Op    string
	Param string
	Value any
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %v", e.Op, e.Param, e.Value, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

func paramError(op, param string, value any, err error) error {
	return &ParamError{Op: op, Param: param, Value: value, Err: err}
}

package expression

import (
	"errors"
	"fmt"

	"github.com/l7mp/dquery/pkg/util"
)

var (
	// ErrInvalidArguments matches errors caused by a malformed expression.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrUnmarshal matches errors raised while parsing an expression.
	ErrUnmarshal = errors.New("cannot parse expression")
)

// NewInvalidArgumentsError reports a malformed expression.
func NewInvalidArgumentsError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArguments, reason)
}

// NewUnmarshalError reports input that is not a valid expression of the given kind. The input is
// truncated in the message.
func NewUnmarshalError(kind, content string) error {
	return fmt.Errorf("%w: invalid %s %s", ErrUnmarshal, kind, util.Truncate(content))
}

// EvalError is returned when an expression fails to evaluate. Errors of nested expressions are
// wrapped, so errors.As finds the outermost failing operator.
type EvalError struct {
	Op         string
	Expression string
	Err        error
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("failed to evaluate %s expression %s: %s", e.Op, util.Truncate(e.Expression), e.Err)
}

// Unwrap returns the underlying cause.
func (e *EvalError) Unwrap() error { return e.Err }

type ErrExpression = error

// NewExpressionError wraps an evaluation failure of e.
func NewExpressionError(e *Expression, err error) ErrExpression {
	return &EvalError{Op: e.Op, Expression: e.String(), Err: err}
}

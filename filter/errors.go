package filter

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression is returned by Compile for a blank --where value
var ErrEmptyExpression = errors.New("empty expression")

// SyntaxError reports a --where expression that expr could not compile.
// Column is 1-based and zero when expr gave no location.
type SyntaxError struct {
	Expression string
	Column     int
	Err        error
}

func (e *SyntaxError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("where %q: column %d: %v", e.Expression, e.Column, e.Err)
	}
	return fmt.Sprintf("where %q: %v", e.Expression, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// MatchError reports an expression that failed on one payload item
type MatchError struct {
	Expression string
	ID         string
	Label      string
	Err        error
}

func (e *MatchError) Error() string {
	item := e.ID
	if e.Label != "" {
		item = fmt.Sprintf("%q (%s)", e.Label, e.ID)
	}
	return fmt.Sprintf("where %q on %s: %v", e.Expression, item, e.Err)
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

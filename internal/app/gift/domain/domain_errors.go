package domain

import (
	"errors"
	"fmt"
)

// ErrNoProductsFound indicates the search ran but nothing matched the filter.
// It is an outcome, not a failure.
var ErrNoProductsFound = errors.New("no products found")

// QueryError reports that the store failed to execute a query.
type QueryError struct {
	Op  string
	Err error
}

// NewQueryError wraps err; it returns nil for a nil err.
func NewQueryError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &QueryError{Op: op, Err: err}
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsQueryError reports whether err carries a QueryError.
func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

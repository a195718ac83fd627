package domain

import (
	"errors"
	"fmt"
)

// ErrUnreachable reports a pairwise measurement whose endpoints do not both
// resolve to stops on the route. It is a normal result, not a fault; callers
// are expected to branch on it with errors.Is.
var ErrUnreachable = errors.New("stop not on route")

// InvariantError reports a broken ring: following successor links no longer
// visits every stop exactly once before returning to the start. This is a
// programming-error-class fault and aborts the operation that detected it.
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("route %s: ring invariant violated: %s", e.Op, e.Detail)
}

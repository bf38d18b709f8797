package invariant

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/hupe1980/coll"
)

// Violation panics with an assertion failure marked with sentinel. The
// assertion wrapper is outermost so that both errors.Is(err, sentinel) and
// errors.IsAssertionFailure(err) hold for the recovered value.
func Violation(sentinel error, format string, args ...any) {
	panic(errors.WithAssertionFailure(errors.Mark(errors.Newf(format, args...), sentinel)))
}

// Index panics unless 0 <= i < n.
func Index(i, n int) {
	if i < 0 || i >= n {
		Violation(coll.ErrIndexOutOfRange, "index %d out of range [0, %d)", i, n)
	}
}

// InsertIndex panics unless 0 <= i <= n.
func InsertIndex(i, n int) {
	if i < 0 || i > n {
		Violation(coll.ErrIndexOutOfRange, "insertion index %d out of range [0, %d]", i, n)
	}
}

// NonNegative panics if n is negative. what names the offending argument.
func NonNegative(n int, what string) {
	if n < 0 {
		Violation(coll.ErrInvalidCapacity, "%s must not be negative, got %d", errors.Safe(what), n)
	}
}

// Order panics if a B-tree order is below min.
func Order(order, minOrder int) {
	if order < minOrder {
		Violation(coll.ErrInvalidOrder, "b-tree order must be at least %d, got %d", minOrder, order)
	}
}

// Sum returns n+additional for non-negative operands and panics if the sum
// does not fit in an int.
func Sum(n, additional int) int {
	if additional > math.MaxInt-n {
		Violation(coll.ErrInvalidCapacity, "capacity overflow: %d + %d", n, additional)
	}
	return n + additional
}

// Double returns 2*c and panics if the result does not fit in an int.
func Double(c int) int {
	if c > math.MaxInt/2 {
		Violation(coll.ErrInvalidCapacity, "capacity overflow doubling %d", c)
	}
	return c * 2
}

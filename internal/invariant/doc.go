// Package invariant raises precondition violations.
//
// A precondition violation is a caller bug: an index outside the live range, a
// B-tree order below the minimum, a negative capacity. The helpers panic with an
// assertion failure from github.com/cockroachdb/errors, marked with one of the
// sentinels in the root coll package, so that recovering code can classify the
// failure with errors.Is and errors.IsAssertionFailure.
//
// The checks run before any state is touched, so a panicking call leaves the
// container exactly as it was.
package invariant

package coll

import "github.com/cockroachdb/errors"

// Sentinels attached to precondition-violation panics.
//
// Violating a caller contract (an index outside the live range, a B-tree order
// below 3, a negative capacity) is a programming error: the operation panics with
// an assertion failure that is marked with one of these values. Code that recovers
// such a panic can classify it with errors.Is:
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, coll.ErrIndexOutOfRange) {
//	        ...
//	    }
//	}()
//
// Ordinary absence (missing key, empty container) never panics; it is reported
// through a (value, ok) pair.
var (
	// ErrIndexOutOfRange marks a panic caused by an index outside the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidOrder marks a panic caused by a B-tree order below the minimum of 3.
	ErrInvalidOrder = errors.New("invalid b-tree order")
	// ErrInvalidCapacity marks a panic caused by a negative capacity or length.
	ErrInvalidCapacity = errors.New("invalid capacity")
)

// ErrOverflow is returned when an integer key does not fit the width of a
// bitmap element or of the destination key type.
var ErrOverflow = errors.New("integer overflow")

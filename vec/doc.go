// Package vec provides Vec, a growable array that owns a single contiguous buffer.
//
// # Ownership
//
// A Vec is the only holder of its buffer. Growth and shrink allocate a new
// buffer, copy the live elements across and clear the old one, so no two
// vectors ever share storage. Elements in [Len, Cap) are kept at the zero value;
// removing an element writes the zero value back so the garbage collector can
// reclaim whatever it referenced.
//
// Ownership moves explicitly:
//
//	dst := src.Take()   // dst owns the buffer, src is empty with the same capacity
//	a.Append(b)         // b's elements move into a, b keeps its capacity
//	defer v.Free()      // releases every element and the buffer on all exit paths
//
// # Growth
//
// Push doubles the capacity when full (starting from 1), giving amortized O(1)
// appends. Reserve doubles until the request fits; ReserveExact grows to exactly
// the requested total. Capacity only decreases through ShrinkTo, ShrinkToFit
// and Free.
//
// # Preconditions
//
// Indexed operations panic with an assertion failure marked
// coll.ErrIndexOutOfRange when the index is outside the live range.
//
// A Vec is not safe for concurrent use.
package vec

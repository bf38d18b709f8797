package conv

import (
	"github.com/cockroachdb/errors"

	"github.com/hupe1980/coll"
	"github.com/hupe1980/coll/hashing"
)

// ToUint32 converts v to uint32.
func ToUint32[T hashing.Integer](v T) (uint32, error) {
	u := uint32(v)
	if v < 0 || T(u) != v {
		return 0, errors.Mark(errors.Newf("%d cannot be converted to uint32", v), coll.ErrOverflow)
	}
	return u, nil
}

// FromUint32 converts v to T.
func FromUint32[T hashing.Integer](v uint32) (T, error) {
	t := T(v)
	if t < 0 || uint32(t) != v {
		return 0, errors.Mark(errors.Newf("%d does not fit in %T", v, t), coll.ErrOverflow)
	}
	return t, nil
}

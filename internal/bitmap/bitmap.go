package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/coll/hashing"
	"github.com/hupe1980/coll/internal/conv"
)

// Encode returns a bitmap holding every key. It fails on the first key that
// does not fit in uint32.
func Encode[K hashing.Integer](keys iter.Seq[K]) (*roaring.Bitmap, error) {
	rb := roaring.New()
	for k := range keys {
		u, err := conv.ToUint32(k)
		if err != nil {
			return nil, err
		}
		rb.Add(u)
	}
	return rb, nil
}

// Decode calls add for every element of rb in ascending order. It fails on the
// first element that does not fit in K.
func Decode[K hashing.Integer](rb *roaring.Bitmap, add func(K)) error {
	for u := range Values(rb) {
		k, err := conv.FromUint32[K](u)
		if err != nil {
			return err
		}
		add(k)
	}
	return nil
}

// Values returns an iterator over rb in ascending order.
func Values(rb *roaring.Bitmap) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

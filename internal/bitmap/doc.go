// Package bitmap converts integer key sequences to and from 32-bit roaring
// bitmaps.
//
// Keys pass through the checked conversions of internal/conv, so a key that
// does not fit in uint32 (or an element that does not fit in the key type)
// fails with an error marked coll.ErrOverflow instead of wrapping.
package bitmap

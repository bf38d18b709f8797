// Package conv provides checked integer conversions to and from uint32, the
// element type of roaring bitmaps.
//
// A failed conversion returns an error marked with coll.ErrOverflow instead of
// silently truncating.
package conv

package vec

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	// ops: true pushes, false pops.
	properties.Property("len equals pushes minus pops clamped at zero", prop.ForAll(
		func(ops []bool) bool {
			v := New[int]()
			want := 0
			for i, push := range ops {
				if push {
					v.Push(i)
					want++
				} else {
					v.Pop()
					want = max(0, want-1)
				}
			}
			return v.Len() == want
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("capacity never decreases without explicit shrink", prop.ForAll(
		func(ops []int) bool {
			v := New[int]()
			prev := v.Cap()
			for _, op := range ops {
				switch op % 5 {
				case 0, 1:
					v.Push(op)
				case 2:
					v.Pop()
				case 3:
					if v.Len() > 0 {
						v.Remove(0)
					}
				case 4:
					v.Truncate(v.Len() / 2)
				}
				if v.Cap() < prev {
					return false
				}
				prev = v.Cap()
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.Property("sort yields a non-decreasing permutation", prop.ForAll(
		func(xs []int) bool {
			v := From(xs...)
			Sort(v)
			want := slices.Clone(xs)
			slices.Sort(want)
			return IsSorted(v) && slices.Equal(want, v.Slice())
		},
		gen.SliceOf(gen.IntRange(-100, 100)),
	))

	properties.Property("len never exceeds cap", prop.ForAll(
		func(xs []int) bool {
			v := New[int]()
			for _, x := range xs {
				if x%3 == 0 {
					v.Insert(v.Len()/2, x)
				} else {
					v.Push(x)
				}
				if v.Len() > v.Cap() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

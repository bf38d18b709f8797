package btree

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// leafDepths returns the depth of every leaf.
func leafDepths[K, V any](n *node[K, V], depth int, out []int) []int {
	if n.leaf {
		return append(out, depth)
	}
	for c := range n.children.Values() {
		out = leafDepths(c, depth+1, out)
	}
	return out
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("lookups match a builtin map", prop.ForAll(
		func(keys []int, order int) bool {
			m := New[int, int](WithOrder(order))
			model := make(map[int]int)
			for i, k := range keys {
				old, replaced := m.Insert(k, i)
				prev, had := model[k]
				if replaced != had || (had && old != prev) {
					return false
				}
				model[k] = i
			}
			if m.Len() != len(model) {
				return false
			}
			for k, want := range model {
				if v, ok := m.Get(k); !ok || v != want {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-500, 500)),
		gen.IntRange(MinOrder, 12),
	))

	properties.Property("iteration is strictly increasing", prop.ForAll(
		func(keys []string, order int) bool {
			m := New[string, struct{}](WithOrder(order))
			for _, k := range keys {
				m.Insert(k, struct{}{})
			}
			got := slices.Collect(m.Keys())
			if len(got) != m.Len() {
				return false
			}
			for i := 1; i < len(got); i++ {
				if got[i-1] >= got[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.IntRange(MinOrder, 12),
	))

	properties.Property("all leaves share one depth", prop.ForAll(
		func(keys []int, order int) bool {
			m := New[int, int](WithOrder(order))
			for _, k := range keys {
				m.Insert(k, k)
			}
			if m.root == nil {
				return m.Height() == 0
			}
			for _, d := range leafDepths(m.root, 1, nil) {
				if d != m.Height() {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(MinOrder, 8),
	))

	properties.Property("replacing keeps the length", prop.ForAll(
		func(keys []int) bool {
			m := New[int, int](WithOrder(3))
			for _, k := range keys {
				m.Insert(k, 0)
			}
			n := m.Len()
			for _, k := range keys {
				if _, replaced := m.Insert(k, 1); !replaced {
					return false
				}
			}
			return m.Len() == n
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t)
}

package hashmap

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hupe1980/coll/hashing"
)

const keySpace = 64

// op decodes a generated integer into an operation kind and a key.
func op(x int) (kind, key int) {
	return x / keySpace, x % keySpace
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("behaves like a builtin map", prop.ForAll(
		func(ops []int) bool {
			m := NewWithHasher[int, int](hashing.Int[int](), WithCapacity(4))
			model := make(map[int]int)
			for i, x := range ops {
				kind, key := op(x)
				switch kind {
				case 0:
					old, replaced := m.Insert(key, i)
					prev, had := model[key]
					if replaced != had || (had && old != prev) {
						return false
					}
					model[key] = i
				case 1:
					v, ok := m.Remove(key)
					prev, had := model[key]
					if ok != had || (had && v != prev) {
						return false
					}
					delete(model, key)
				default:
					v, ok := m.Get(key)
					prev, had := model[key]
					if ok != had || (had && v != prev) {
						return false
					}
				}
				if m.Len() != len(model) || m.Len()+m.Tombstones() > ceiling(m.Cap()) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 3*keySpace-1)),
	))

	properties.Property("insert then get returns the value", prop.ForAll(
		func(keys []string, v int) bool {
			m := NewWithHasher[string, int](hashing.String[string]())
			for _, k := range keys {
				m.Insert(k, v)
				if got, ok := m.Get(k); !ok || got != v {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.Int(),
	))

	properties.Property("remove then get is absent", prop.ForAll(
		func(keys []int) bool {
			m := New[int, struct{}]()
			for _, k := range keys {
				m.Insert(k, struct{}{})
			}
			for _, k := range keys {
				m.Remove(k)
				if m.ContainsKey(k) {
					return false
				}
			}
			return m.IsEmpty()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

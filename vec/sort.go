package vec

import "cmp"

// Sort sorts v in ascending order. The sort is stable.
func Sort[T cmp.Ordered](v *Vec[T]) {
	v.SortFunc(cmp.Compare[T])
}

// IsSorted reports whether v is in ascending order.
func IsSorted[T cmp.Ordered](v *Vec[T]) bool {
	for i := 1; i < v.len; i++ {
		if cmp.Less(v.buf[i], v.buf[i-1]) {
			return false
		}
	}
	return true
}

// SortFunc sorts v by compare using a stable top-down merge sort.
//
// compare(a, b) returns a negative number when a < b, zero when they are equal
// and a positive number when a > b. Equal elements keep their relative order.
// The sort runs in O(n log n) time with a single auxiliary buffer of Len()
// elements that is allocated once per call.
func (v *Vec[T]) SortFunc(compare func(a, b T) int) {
	if v.len < 2 {
		return
	}
	aux := make([]T, v.len)
	mergeSort(v.buf[:v.len], aux, 0, v.len-1, compare)
	clear(aux)
}

// mergeSort sorts data[left..right] (inclusive).
func mergeSort[T any](data, aux []T, left, right int, compare func(a, b T) int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(data, aux, left, mid, compare)
	mergeSort(data, aux, mid+1, right, compare)

	// Halves already in order.
	if compare(data[mid], data[mid+1]) <= 0 {
		return
	}
	merge(data, aux, left, mid, right, compare)
}

func merge[T any](data, aux []T, left, mid, right int, compare func(a, b T) int) {
	copy(aux[left:right+1], data[left:right+1])

	i, j, k := left, mid+1, left
	for i <= mid && j <= right {
		// Ties take from the left run.
		if compare(aux[j], aux[i]) < 0 {
			data[k] = aux[j]
			j++
		} else {
			data[k] = aux[i]
			i++
		}
		k++
	}
	k += copy(data[k:], aux[i:mid+1])
	copy(data[k:], aux[j:right+1])
}

package analysis

import "github.com/san-kum/sortviz/internal/sorting"

// Inversions counts pairs i < j with a[i] > a[j]. Equal values are not
// inversions.
func Inversions(a sorting.Array) int {
	buf := a.Clone()
	tmp := make(sorting.Array, len(a))
	return countInversions(buf, tmp)
}

func countInversions(a, tmp sorting.Array) int {
	n := len(a)
	if n < 2 {
		return 0
	}
	mid := n / 2
	count := countInversions(a[:mid], tmp[:mid]) + countInversions(a[mid:], tmp[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < n {
		if a[i] <= a[j] {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			count += mid - i
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:mid])
	copy(tmp[k:], a[j:])
	copy(a, tmp[:n])
	return count
}

// Sortedness is the fraction of adjacent pairs in non-decreasing order. An
// array with fewer than two elements is fully sorted.
func Sortedness(a sorting.Array) float64 {
	if len(a) < 2 {
		return 1.0
	}
	ordered := 0
	for i := 1; i < len(a); i++ {
		if a[i-1] <= a[i] {
			ordered++
		}
	}
	return float64(ordered) / float64(len(a)-1)
}

// Runs counts maximal non-decreasing runs; a sorted array has one.
func Runs(a sorting.Array) int {
	if len(a) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			runs++
		}
	}
	return runs
}

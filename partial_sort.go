package descriptive

// partialSort reorders xs so that its first min(k, len(xs)) elements are
// the smallest elements of xs in ascending order. The order of the
// remaining elements is unspecified.
//
// It is a quicksort that never descends into subranges lying wholly at or
// beyond k, so the upper part of the slice is partitioned but never fully
// ordered. Expected O(n + k log k).
func partialSort[T Number](xs []T, k int) {
	if k > len(xs) {
		k = len(xs)
	}
	partialQuicksort(xs, 0, len(xs), k)
}

func partialQuicksort[T Number](xs []T, lo, hi, k int) {
	for hi-lo > 1 && lo < k {
		p := partition(xs, lo, hi)
		if p+1 < k {
			partialQuicksort(xs, p+1, hi, k)
		}
		hi = p
	}
}

// partition picks the middle element as pivot and returns its final index;
// xs[lo:p] <= xs[p] <= xs[p+1:hi] afterwards.
func partition[T Number](xs []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	xs[mid], xs[hi-1] = xs[hi-1], xs[mid]

	pivot := xs[hi-1]
	i := lo
	for j := lo; j < hi-1; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[hi-1] = xs[hi-1], xs[i]
	return i
}

package helpers

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](numbers ...T) T {
	var min T = numbers[0]
	for _, n := range numbers {
		if n < min {
			min = n
		}
	}
	return min
}

func Max[T constraints.Ordered](numbers ...T) T {
	var max T = numbers[0]
	for _, n := range numbers {
		if n > max {
			max = n
		}
	}
	return max
}

// AlignUp rounds n up to the next multiple of align. align must be positive.
func AlignUp[T constraints.Integer](n, align T) T {
	if r := n % align; r != 0 {
		return n + align - r
	}
	return n
}

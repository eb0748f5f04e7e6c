package handanalyzer

// forEachCombination calls fn with every k-sized ascending index tuple drawn from [0, n).
// The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k > n || k <= 0 {
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		fn(idx)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

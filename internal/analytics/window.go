package analytics

import "sort"

// The ranking helpers below operate on rows already sorted by the
// ranking criterion. They take the partition length and an equality
// predicate over adjacent positions, which keeps them reusable across
// every stage without tying them to a row type.

// competitionRanks assigns RANK-style values: tied rows share a rank and
// the next distinct row's rank skips by the tie count.
func competitionRanks(n int, tied func(i, j int) bool) []int {
	ranks := make([]int, n)
	for i := 0; i < n; i++ {
		if i > 0 && tied(i, i-1) {
			ranks[i] = ranks[i-1]
		} else {
			ranks[i] = i + 1
		}
	}
	return ranks
}

// denseRanks assigns DENSE_RANK-style values: tied rows share a rank and
// the next distinct row's rank is exactly one more.
func denseRanks(n int, tied func(i, j int) bool) []int {
	ranks := make([]int, n)
	rank := 0
	for i := 0; i < n; i++ {
		if i == 0 || !tied(i, i-1) {
			rank++
		}
		ranks[i] = rank
	}
	return ranks
}

// percentRanks assigns (first tied position)/(n-1) per row, 0 when the
// partition has a single row.
func percentRanks(n int, tied func(i, j int) bool) []float64 {
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	first := 0
	for i := 0; i < n; i++ {
		if i > 0 && !tied(i, i-1) {
			first = i
		}
		out[i] = float64(first) / float64(n-1)
	}
	return out
}

// cumeDists assigns (rows ordered at or before the last tied
// position)/n per row.
func cumeDists(n int, tied func(i, j int) bool) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		last := i
		for last+1 < n && tied(last+1, last) {
			last++
		}
		for j := i; j <= last; j++ {
			out[j] = float64(last+1) / float64(n)
		}
		i = last
	}
	return out
}

// ntileBuckets splits n ordered rows into k buckets of near-equal size,
// any remainder going to the earliest buckets. Returned values are
// 1-based bucket numbers per position.
func ntileBuckets(n, k int) []int {
	out := make([]int, n)
	if n == 0 || k <= 0 {
		return out
	}
	base := n / k
	remainder := n % k
	pos := 0
	for bucket := 1; bucket <= k && pos < n; bucket++ {
		size := base
		if bucket <= remainder {
			size++
		}
		for j := 0; j < size; j++ {
			out[pos] = bucket
			pos++
		}
	}
	return out
}

// partition groups rows by key, preserving input order within each
// group.
func partition[T any, K comparable](rows []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, row := range rows {
		k := key(row)
		groups[k] = append(groups[k], row)
	}
	return groups
}

// sortedKeys returns the partition keys in ascending order so callers
// iterate deterministically.
func sortedKeys[T any](groups map[string][]T) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

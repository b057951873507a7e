package colour

import (
	"cmp"
	"slices"
)

// SelectDistinct walks buckets from heaviest to lightest and keeps each colour
// whose distance to every kept colour exceeds threshold, stopping at limit.
// Buckets with equal weight keep their input order.
func SelectDistinct(buckets []Bucket, limit int, threshold float64) []RGB {
	sorted := slices.Clone(buckets)
	slices.SortStableFunc(sorted, func(a, b Bucket) int {
		return cmp.Compare(b.Count, a.Count)
	})

	selected := make([]RGB, 0, limit)
	for _, bucket := range sorted {
		if len(selected) >= limit {
			break
		}
		if isDistinct(bucket.RGB, selected, threshold) {
			selected = append(selected, bucket.RGB)
		}
	}
	return selected
}

func isDistinct(c RGB, selected []RGB, threshold float64) bool {
	for _, s := range selected {
		if Distance(c, s) <= threshold {
			return false
		}
	}
	return true
}

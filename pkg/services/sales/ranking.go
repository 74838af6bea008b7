package sales

import (
	"sort"

	"github.com/pp-tools/pizza-pulse/pkg/models/domain"
)

// TopItems returns the n items with the highest summed revenue, descending.
// Ties keep the order of first appearance in the input, so repeated runs on
// identical data produce identical rankings.
func TopItems(items []domain.ItemRevenue, n int) []domain.ItemRevenue {
	ranked := rankItems(items, func(a, b domain.ItemRevenue) bool {
		return a.Revenue.GreaterThan(b.Revenue)
	})
	return truncate(ranked, n)
}

// BottomItems returns the n items with the lowest summed revenue, ascending,
// with the same tie behavior as TopItems.
func BottomItems(items []domain.ItemRevenue, n int) []domain.ItemRevenue {
	ranked := rankItems(items, func(a, b domain.ItemRevenue) bool {
		return a.Revenue.LessThan(b.Revenue)
	})
	return truncate(ranked, n)
}

func rankItems(items []domain.ItemRevenue, less func(a, b domain.ItemRevenue) bool) []domain.ItemRevenue {
	ranked := make([]domain.ItemRevenue, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

func truncate(items []domain.ItemRevenue, n int) []domain.ItemRevenue {
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

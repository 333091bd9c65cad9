package catalog

import (
	"sort"

	"github.com/zone2fun/py-asset/pkg/model"
)

// SortKey orders an already-fetched listing page.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// ParseSortKey maps a query parameter onto a sort key, defaulting to newest.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Sort orders properties in place. The ordering is total and stable: ties
// keep their fetched order, so re-sorting by the same key is a no-op.
// Listings without a creation timestamp normalize to epoch zero and sort
// as the oldest.
func Sort(props []model.Property, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(props, func(i, j int) bool {
			return props[i].Price < props[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(props, func(i, j int) bool {
			return props[i].Price > props[j].Price
		})
	default:
		sort.SliceStable(props, func(i, j int) bool {
			return epochMillis(props[i]) > epochMillis(props[j])
		})
	}
}

func epochMillis(p model.Property) int64 {
	if p.CreatedAt.IsZero() {
		return 0
	}
	return p.CreatedAt.UnixMilli()
}

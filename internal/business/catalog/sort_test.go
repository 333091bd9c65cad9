package catalog

import (
	"reflect"
	"testing"
	"time"

	"github.com/zone2fun/py-asset/pkg/model"
)

func sampleProps() []model.Property {
	day := func(d int) time.Time {
		return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
	}
	return []model.Property{
		{ID: "a", Price: 300, CreatedAt: day(3)},
		{ID: "b", Price: 100},            // no timestamp, sorts oldest
		{ID: "c", Price: 200, CreatedAt: day(5)},
		{ID: "d", Price: 200, CreatedAt: day(1)},
		{ID: "e", Price: 100},            // second missing timestamp, ties keep order
	}
}

func ids(props []model.Property) []string {
	out := make([]string, len(props))
	for i, p := range props {
		out[i] = p.ID
	}
	return out
}

func TestSortOrders(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortNewest, []string{"c", "a", "d", "b", "e"}},
		{SortPriceAsc, []string{"b", "e", "c", "d", "a"}},
		{SortPriceDesc, []string{"a", "c", "d", "b", "e"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			props := sampleProps()
			Sort(props, tt.key)
			if got := ids(props); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort(%s) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	for _, key := range []SortKey{SortNewest, SortPriceAsc, SortPriceDesc} {
		props := sampleProps()
		Sort(props, key)
		once := ids(props)
		Sort(props, key)
		if got := ids(props); !reflect.DeepEqual(got, once) {
			t.Errorf("re-sort by %s changed order: %v -> %v", key, once, got)
		}
	}
}

func TestSortTotalOnEmptyAndSingle(t *testing.T) {
	Sort(nil, SortNewest)
	one := []model.Property{{ID: "x"}}
	Sort(one, SortPriceDesc)
	if one[0].ID != "x" {
		t.Fatal("single-element sort broke")
	}
}

func TestParseSortKey(t *testing.T) {
	if ParseSortKey("price_asc") != SortPriceAsc {
		t.Error("price_asc not recognized")
	}
	if ParseSortKey("") != SortNewest {
		t.Error("empty should default to newest")
	}
	if ParseSortKey("garbage") != SortNewest {
		t.Error("unknown should default to newest")
	}
}

package query

import (
	"sort"

	"github.com/wineworld/wineworld-backend/internal/app/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMethod is one registry entry: a stable identifier plus the
// human-readable label surfaced by the limits endpoints.
type SortMethod struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Registries are kept in ascending id order; the limits endpoints expose
// them verbatim. An unknown or empty sort id leaves store order untouched.

var wineSortMethods = []SortMethod{
	{ID: "name_asc", Label: "Name (A-Z)"},
	{ID: "name_desc", Label: "Name (Z-A)"},
	{ID: "rating_asc", Label: "Rating (Low to High)"},
	{ID: "rating_desc", Label: "Rating (High to Low)"},
	{ID: "reviews_asc", Label: "Reviews (Low to High)"},
	{ID: "reviews_desc", Label: "Reviews (High to Low)"},
}

var regionSortMethods = []SortMethod{
	{ID: "name_asc", Label: "Name (A-Z)"},
	{ID: "name_desc", Label: "Name (Z-A)"},
	{ID: "rating_asc", Label: "Rating (Low to High)"},
	{ID: "rating_desc", Label: "Rating (High to Low)"},
	{ID: "reviews_asc", Label: "Reviews (Low to High)"},
	{ID: "reviews_desc", Label: "Reviews (High to Low)"},
}

var vineyardSortMethods = []SortMethod{
	{ID: "name_asc", Label: "Name (A-Z)"},
	{ID: "name_desc", Label: "Name (Z-A)"},
	{ID: "price_asc", Label: "Price (Low to High)"},
	{ID: "price_desc", Label: "Price (High to Low)"},
	{ID: "rating_asc", Label: "Rating (Low to High)"},
	{ID: "rating_desc", Label: "Rating (High to Low)"},
	{ID: "reviews_asc", Label: "Reviews (Low to High)"},
	{ID: "reviews_desc", Label: "Reviews (High to Low)"},
}

// WineSortMethods returns the wine sort registry in ascending id order.
func WineSortMethods() []SortMethod {
	return append([]SortMethod(nil), wineSortMethods...)
}

// RegionSortMethods returns the region sort registry in ascending id order.
func RegionSortMethods() []SortMethod {
	return append([]SortMethod(nil), regionSortMethods...)
}

// VineyardSortMethods returns the vineyard sort registry in ascending id
// order.
func VineyardSortMethods() []SortMethod {
	return append([]SortMethod(nil), vineyardSortMethods...)
}

// newCollator builds a locale-aware collator that folds case and diacritics,
// so "Émilion" and "emilion" order the way a reader expects rather than by
// byte value. Collators carry internal buffers and are not safe for
// concurrent use, so each sort builds its own.
func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Loose)
}

// SortStrings returns an alphabetically ordered copy of values using
// locale-aware collation.
func SortStrings(values []string) []string {
	sorted := append([]string(nil), values...)
	c := newCollator()
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// SortWines returns a stably reordered copy of wines under the given sort
// method id. Unknown ids yield store order.
func SortWines(wines []*model.Wine, methodID string) []*model.Wine {
	sorted := append([]*model.Wine(nil), wines...)
	c := newCollator()
	switch methodID {
	case "name_asc":
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case "name_desc":
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	case "rating_asc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating < sorted[j].Rating })
	case "rating_desc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case "reviews_asc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Reviews < sorted[j].Reviews })
	case "reviews_desc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Reviews > sorted[j].Reviews })
	}
	return sorted
}

// SortRegions returns a stably reordered copy of regions under the given
// sort method id. Unknown ids yield store order.
func SortRegions(regions []*model.Region, methodID string) []*model.Region {
	sorted := append([]*model.Region(nil), regions...)
	c := newCollator()
	switch methodID {
	case "name_asc":
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case "name_desc":
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	case "rating_asc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating < sorted[j].Rating })
	case "rating_desc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case "reviews_asc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Reviews < sorted[j].Reviews })
	case "reviews_desc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Reviews > sorted[j].Reviews })
	}
	return sorted
}

// SortVineyards returns a stably reordered copy of vineyards under the given
// sort method id. Unknown ids yield store order.
func SortVineyards(vineyards []*model.Vineyard, methodID string) []*model.Vineyard {
	sorted := append([]*model.Vineyard(nil), vineyards...)
	c := newCollator()
	switch methodID {
	case "name_asc":
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case "name_desc":
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	case "price_asc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case "price_desc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case "rating_asc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating < sorted[j].Rating })
	case "rating_desc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case "reviews_asc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Reviews < sorted[j].Reviews })
	case "reviews_desc":
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Reviews > sorted[j].Reviews })
	}
	return sorted
}

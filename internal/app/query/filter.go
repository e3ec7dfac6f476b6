package query

import (
	"strings"

	"github.com/wineworld/wineworld-backend/internal/app/model"
)

// Criteria are AND-composed: an entity survives only if it satisfies every
// supplied option. Zero values (empty strings, empty slices, nil bounds)
// mean the option is not part of the predicate. Filtering preserves input
// order and never mutates the input collection.

// WineCriteria is the closed set of filter options for wine collections.
type WineCriteria struct {
	Name         string
	Countries    []string
	StartRating  *float64
	EndRating    *float64
	StartReviews *int
	EndReviews   *int
	Type         string
}

// RegionCriteria is the closed set of filter options for region collections.
// Tags and TripTypes require every supplied value to be present on the
// region (superset semantics, not any-of).
type RegionCriteria struct {
	Name         string
	Countries    []string
	StartRating  *float64
	EndRating    *float64
	StartReviews *int
	EndReviews   *int
	Tags         []string
	TripTypes    []string
}

// VineyardCriteria is the closed set of filter options for vineyard
// collections.
type VineyardCriteria struct {
	Name         string
	Countries    []string
	StartRating  *float64
	EndRating    *float64
	StartReviews *int
	EndReviews   *int
	StartPrice   *int
	EndPrice     *int
}

// FilterWines returns the wines satisfying every supplied criterion.
func FilterWines(wines []*model.Wine, c WineCriteria) []*model.Wine {
	var result []*model.Wine
	for _, wine := range wines {
		if !matchName(wine.Name, c.Name) {
			continue
		}
		if !matchCountry(wine.Country, c.Countries) {
			continue
		}
		if !inFloatRange(wine.Rating, c.StartRating, c.EndRating) {
			continue
		}
		if !inIntRange(wine.Reviews, c.StartReviews, c.EndReviews) {
			continue
		}
		if c.Type != "" && wine.Type != c.Type {
			continue
		}
		result = append(result, wine)
	}
	return result
}

// FilterRegions returns the regions satisfying every supplied criterion.
func FilterRegions(regions []*model.Region, c RegionCriteria) []*model.Region {
	var result []*model.Region
	for _, region := range regions {
		if !matchName(region.Name, c.Name) {
			continue
		}
		if !matchCountry(region.Country, c.Countries) {
			continue
		}
		if !inFloatRange(region.Rating, c.StartRating, c.EndRating) {
			continue
		}
		if !inIntRange(region.Reviews, c.StartReviews, c.EndReviews) {
			continue
		}
		if !containsAll(region.Tags, c.Tags) {
			continue
		}
		if !containsAll(region.TripTypes, c.TripTypes) {
			continue
		}
		result = append(result, region)
	}
	return result
}

// FilterVineyards returns the vineyards satisfying every supplied criterion.
func FilterVineyards(vineyards []*model.Vineyard, c VineyardCriteria) []*model.Vineyard {
	var result []*model.Vineyard
	for _, vineyard := range vineyards {
		if !matchName(vineyard.Name, c.Name) {
			continue
		}
		if !matchCountry(vineyard.Country, c.Countries) {
			continue
		}
		if !inFloatRange(vineyard.Rating, c.StartRating, c.EndRating) {
			continue
		}
		if !inIntRange(vineyard.Reviews, c.StartReviews, c.EndReviews) {
			continue
		}
		if !inIntRange(vineyard.Price, c.StartPrice, c.EndPrice) {
			continue
		}
		result = append(result, vineyard)
	}
	return result
}

// matchName reports case-insensitive substring containment; an empty query
// matches everything.
func matchName(name, queryString string) bool {
	if queryString == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(queryString))
}

func matchCountry(country string, countries []string) bool {
	if len(countries) == 0 {
		return true
	}
	for _, c := range countries {
		if c == country {
			return true
		}
	}
	return false
}

func inFloatRange(value float64, start, end *float64) bool {
	if start != nil && value < *start {
		return false
	}
	if end != nil && value > *end {
		return false
	}
	return true
}

func inIntRange(value int, start, end *int) bool {
	if start != nil && value < *start {
		return false
	}
	if end != nil && value > *end {
		return false
	}
	return true
}

// containsAll reports whether every wanted label is present in the set.
func containsAll(set []string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	members := make(map[string]struct{}, len(set))
	for _, s := range set {
		members[s] = struct{}{}
	}
	for _, w := range wanted {
		if _, ok := members[w]; !ok {
			return false
		}
	}
	return true
}

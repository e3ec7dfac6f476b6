package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wineworld/wineworld-backend/internal/app/model"
)

func wineNames(wines []*model.Wine) []string {
	names := make([]string, 0, len(wines))
	for _, w := range wines {
		names = append(names, w.Name)
	}
	return names
}

func TestSortWines_ByName(t *testing.T) {
	wines := []*model.Wine{
		{ID: 1, Name: "Alba"},
		{ID: 2, Name: "Barolo"},
		{ID: 3, Name: "Asti"},
	}

	asc := SortWines(wines, "name_asc")
	assert.Equal(t, []string{"Alba", "Asti", "Barolo"}, wineNames(asc))

	desc := SortWines(wines, "name_desc")
	assert.Equal(t, []string{"Barolo", "Asti", "Alba"}, wineNames(desc))

	// Input untouched.
	assert.Equal(t, []string{"Alba", "Barolo", "Asti"}, wineNames(wines))
}

func TestSortWines_NameIsLocaleAware(t *testing.T) {
	wines := []*model.Wine{
		{ID: 1, Name: "Zinfandel"},
		{ID: 2, Name: "Émilion Blend"},
		{ID: 3, Name: "Alba"},
	}

	// Byte-value ordering would put "Émilion" after "Zinfandel"; collation
	// folds the accent so it sorts under E.
	got := SortWines(wines, "name_asc")
	assert.Equal(t, []string{"Alba", "Émilion Blend", "Zinfandel"}, wineNames(got))
}

func TestSortWines_ByRatingAndReviews(t *testing.T) {
	wines := []*model.Wine{
		{ID: 1, Name: "A", Rating: 4.0, Reviews: 300},
		{ID: 2, Name: "B", Rating: 4.8, Reviews: 100},
		{ID: 3, Name: "C", Rating: 3.5, Reviews: 200},
	}

	tests := []struct {
		methodID  string
		wantNames []string
	}{
		{methodID: "rating_asc", wantNames: []string{"C", "A", "B"}},
		{methodID: "rating_desc", wantNames: []string{"B", "A", "C"}},
		{methodID: "reviews_asc", wantNames: []string{"B", "C", "A"}},
		{methodID: "reviews_desc", wantNames: []string{"A", "C", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.methodID, func(t *testing.T) {
			got := SortWines(wines, tt.methodID)
			assert.Equal(t, tt.wantNames, wineNames(got))
		})
	}
}

func TestSortWines_UnknownMethodKeepsStoreOrder(t *testing.T) {
	wines := []*model.Wine{
		{ID: 3, Name: "C"},
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}

	for _, methodID := range []string{"", "bogus", "name"} {
		got := SortWines(wines, methodID)
		assert.Equal(t, []string{"C", "A", "B"}, wineNames(got), "method %q", methodID)
	}
}

func TestSortWines_StableOnTies(t *testing.T) {
	wines := []*model.Wine{
		{ID: 1, Name: "A", Rating: 4.0},
		{ID: 2, Name: "B", Rating: 4.0},
		{ID: 3, Name: "C", Rating: 4.0},
	}

	got := SortWines(wines, "rating_desc")
	assert.Equal(t, []string{"A", "B", "C"}, wineNames(got))
}

func TestSortWines_Idempotent(t *testing.T) {
	wines := []*model.Wine{
		{ID: 1, Name: "Merlot"},
		{ID: 2, Name: "Cabernet"},
		{ID: 3, Name: "Syrah"},
	}

	once := SortWines(wines, "name_asc")
	twice := SortWines(once, "name_asc")
	assert.Equal(t, wineNames(once), wineNames(twice))
}

func TestSortVineyards_ByPrice(t *testing.T) {
	vineyards := []*model.Vineyard{
		{ID: 1, Name: "A", Price: 80},
		{ID: 2, Name: "B", Price: 20},
		{ID: 3, Name: "C", Price: 150},
	}

	asc := SortVineyards(vineyards, "price_asc")
	require.Len(t, asc, 3)
	assert.Equal(t, uint(2), asc[0].ID)
	assert.Equal(t, uint(1), asc[1].ID)
	assert.Equal(t, uint(3), asc[2].ID)

	desc := SortVineyards(vineyards, "price_desc")
	assert.Equal(t, uint(3), desc[0].ID)
}

func TestSortRegions_ByName(t *testing.T) {
	regions := []*model.Region{
		{ID: 1, Name: "Tuscany"},
		{ID: 2, Name: "Alsace"},
		{ID: 3, Name: "Mosel"},
	}

	got := SortRegions(regions, "name_asc")
	assert.Equal(t, "Alsace", got[0].Name)
	assert.Equal(t, "Mosel", got[1].Name)
	assert.Equal(t, "Tuscany", got[2].Name)
}

func TestSortStrings(t *testing.T) {
	got := SortStrings([]string{"Émilion", "alba", "Zinfandel", "Asti"})
	assert.Equal(t, []string{"alba", "Asti", "Émilion", "Zinfandel"}, got)
}

func TestSortMethodRegistries(t *testing.T) {
	tests := []struct {
		name    string
		methods []SortMethod
		wantIDs []string
	}{
		{
			name:    "Wine registry",
			methods: WineSortMethods(),
			wantIDs: []string{"name_asc", "name_desc", "rating_asc", "rating_desc", "reviews_asc", "reviews_desc"},
		},
		{
			name:    "Region registry",
			methods: RegionSortMethods(),
			wantIDs: []string{"name_asc", "name_desc", "rating_asc", "rating_desc", "reviews_asc", "reviews_desc"},
		},
		{
			name:    "Vineyard registry includes price",
			methods: VineyardSortMethods(),
			wantIDs: []string{"name_asc", "name_desc", "price_asc", "price_desc", "rating_asc", "rating_desc", "reviews_asc", "reviews_desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]string, 0, len(tt.methods))
			for _, m := range tt.methods {
				require.NotEmpty(t, m.Label)
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

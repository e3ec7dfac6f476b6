package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wineworld/wineworld-backend/internal/app/query"
)

func TestRegionService_ListRegions(t *testing.T) {
	regionService := NewRegionService(setupCatalog(t), 20)

	resp := regionService.ListRegions(RegionListOptions{Sort: "name_asc", Page: 1})

	assert.Equal(t, 3, resp.Length)
	assert.Equal(t, 3, resp.TotalInstances)
	assert.Equal(t, "Piedmont", resp.List[0].Name)
	assert.Equal(t, "Rioja", resp.List[1].Name)
	assert.Equal(t, "Tuscany", resp.List[2].Name)
}

func TestRegionService_ListRegions_TagFilter(t *testing.T) {
	regionService := NewRegionService(setupCatalog(t), 20)

	resp := regionService.ListRegions(RegionListOptions{
		Criteria: query.RegionCriteria{Tags: []string{"scenic", "food"}},
		Page:     1,
	})

	require.Equal(t, 1, resp.Length)
	assert.Equal(t, "Piedmont", resp.List[0].Name)
}

func TestRegionService_GetRegionByID(t *testing.T) {
	regionService := NewRegionService(setupCatalog(t), 20)

	detail, err := regionService.GetRegionByID(1)
	require.NoError(t, err)

	assert.Equal(t, "Piedmont", detail.Name)
	assert.Equal(t, Coordinates{Latitude: 44.7, Longitude: 8.0}, detail.Coordinates)
	assert.Equal(t, ImageInfo{
		URL:    "https://img.example.com/piedmont.jpg",
		Width:  1200,
		Height: 800,
	}, detail.Image)

	require.Len(t, detail.Related.Vineyards, 1)
	assert.Equal(t, "Langhe Estate", detail.Related.Vineyards[0].Name)

	require.Len(t, detail.Related.Wines, 2)
	assert.Equal(t, "Barolo Riserva", detail.Related.Wines[0].Name)
	assert.Equal(t, "Barbaresco", detail.Related.Wines[1].Name)
}

func TestRegionService_GetRegionByID_NoRelations(t *testing.T) {
	regionService := NewRegionService(setupCatalog(t), 20)

	// Tuscany has a wine but no vineyard claiming it.
	detail, err := regionService.GetRegionByID(2)
	require.NoError(t, err)

	assert.NotNil(t, detail.Related.Vineyards)
	assert.Empty(t, detail.Related.Vineyards)
	require.Len(t, detail.Related.Wines, 1)
	assert.Equal(t, "Chianti Classico", detail.Related.Wines[0].Name)
}

func TestRegionService_GetRegionByID_NotFound(t *testing.T) {
	regionService := NewRegionService(setupCatalog(t), 20)

	detail, err := regionService.GetRegionByID(404)
	assert.ErrorIs(t, err, ErrRegionNotFound)
	assert.Nil(t, detail)
}

func TestRegionService_GetRegionLimits(t *testing.T) {
	regionService := NewRegionService(setupCatalog(t), 20)

	limits := regionService.GetRegionLimits()

	assert.Equal(t, RangeFloat{Min: 4.2, Max: 4.7}, limits.Rating)
	assert.Equal(t, RangeInt{Min: 400, Max: 1500}, limits.Reviews)
	assert.Equal(t, []string{"Italy", "Spain"}, limits.Countries)
	assert.Equal(t, []string{"food", "historic", "scenic"}, limits.Tags)
	assert.Equal(t, []string{"couples", "family"}, limits.TripTypes)
	assert.Equal(t, query.RegionSortMethods(), limits.Sorts)
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/internal/db"
)

func setupRegionRepositoryTest(t *testing.T) RegionRepository {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewRegionRepository(testDB)
}

func TestRegionRepository_RoundTrip(t *testing.T) {
	regionRepo := setupRegionRepositoryTest(t)

	err := regionRepo.BulkCreate([]*model.Region{
		{
			Name:        "Tuscany",
			Country:     "Italy",
			Rating:      4.5,
			Reviews:     1500,
			Longitude:   11.0,
			Latitude:    43.4,
			URL:         "https://example.com/tuscany",
			Image:       "https://img.example.com/tuscany.jpg",
			ImageWidth:  1200,
			ImageHeight: 800,
			Tags:        []string{"scenic", "historic"},
			TripTypes:   []string{"couples", "family"},
		},
	}, 100)
	require.NoError(t, err)

	regions, err := regionRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, regions, 1)

	region := regions[0]
	assert.Equal(t, "Tuscany", region.Name)
	assert.Equal(t, 4.5, region.Rating)
	assert.Equal(t, 1200, region.ImageWidth)

	// Array columns survive the round trip.
	assert.Equal(t, []string{"scenic", "historic"}, []string(region.Tags))
	assert.Equal(t, []string{"couples", "family"}, []string(region.TripTypes))
}

func TestRegionRepository_ReplaceAll(t *testing.T) {
	regionRepo := setupRegionRepositoryTest(t)

	err := regionRepo.BulkCreate([]*model.Region{
		{Name: "Old Region", Country: "France"},
	}, 100)
	require.NoError(t, err)

	err = regionRepo.ReplaceAll([]*model.Region{
		{Name: "Douro", Country: "Portugal", Tags: []string{"scenic"}},
	}, 100)
	require.NoError(t, err)

	regions, err := regionRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "Douro", regions[0].Name)
}

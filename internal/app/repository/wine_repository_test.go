package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/internal/db"
)

func setupWineRepositoryTest(t *testing.T) WineRepository {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewWineRepository(testDB)
}

func TestWineRepository_FindAll(t *testing.T) {
	wineRepo := setupWineRepositoryTest(t)

	// Initially empty
	wines, err := wineRepo.FindAll()
	assert.NoError(t, err)
	assert.Len(t, wines, 0)

	err = wineRepo.BulkCreate([]*model.Wine{
		{Name: "Barolo", Country: "Italy", Region: "Piedmont", Rating: 4.6, Reviews: 320, Type: "Red"},
		{Name: "Chablis", Country: "France", Region: "Burgundy", Rating: 4.2, Reviews: 150, Type: "White"},
	}, 100)
	require.NoError(t, err)

	wines, err = wineRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, wines, 2)

	// FindAll returns store order.
	assert.Equal(t, "Barolo", wines[0].Name)
	assert.Equal(t, "Chablis", wines[1].Name)
	assert.Less(t, wines[0].ID, wines[1].ID)
}

func TestWineRepository_ReplaceAll(t *testing.T) {
	wineRepo := setupWineRepositoryTest(t)

	err := wineRepo.BulkCreate([]*model.Wine{
		{Name: "Old Vintage", Country: "Italy", Region: "Piedmont", Type: "Red"},
	}, 100)
	require.NoError(t, err)

	err = wineRepo.ReplaceAll([]*model.Wine{
		{Name: "New One", Country: "Spain", Region: "Rioja", Type: "Red"},
		{Name: "New Two", Country: "Spain", Region: "Rioja", Type: "White"},
	}, 100)
	require.NoError(t, err)

	wines, err := wineRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, wines, 2)
	assert.Equal(t, "New One", wines[0].Name)
	assert.Equal(t, "New Two", wines[1].Name)
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/internal/db"
)

func TestPostRepository_RoundTrip(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	postRepo := NewPostRepository(testDB)

	err = postRepo.BulkCreate([]*model.Post{
		{WineType: "Red", URLs: []string{"https://reddit.com/r/wine/a", "https://reddit.com/r/wine/b"}},
		{WineType: "White", URLs: []string{"https://reddit.com/r/wine/c"}},
	}, 100)
	require.NoError(t, err)

	posts, err := postRepo.FindAll()
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// URL ordering within a group is preserved.
	assert.Equal(t, "Red", posts[0].WineType)
	assert.Equal(t, []string{"https://reddit.com/r/wine/a", "https://reddit.com/r/wine/b"}, []string(posts[0].URLs))
	assert.Equal(t, "White", posts[1].WineType)
}

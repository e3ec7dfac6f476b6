package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wineworld/wineworld-backend/internal/app/model"
)

func TestBuild_WineRegionAssociation(t *testing.T) {
	piedmont := &model.Region{ID: 1, Name: "Piedmont", Country: "Italy"}
	tuscany := &model.Region{ID: 2, Name: "Tuscany", Country: "Italy"}
	barolo := &model.Wine{ID: 1, Name: "Barolo Riserva", Country: "Italy", Region: "Piedmont", Type: "Red"}
	chianti := &model.Wine{ID: 2, Name: "Chianti Classico", Country: "Italy", Region: "Tuscany", Type: "Red"}

	c, err := Build(nil, []*model.Wine{barolo, chianti}, []*model.Region{piedmont, tuscany}, nil)
	require.NoError(t, err)

	require.Len(t, barolo.RegionList, 1)
	assert.Same(t, piedmont, barolo.RegionList[0].Region)
	require.Len(t, chianti.RegionList, 1)
	assert.Same(t, tuscany, chianti.RegionList[0].Region)

	assert.NotEqual(t, "", c.BuildID.String())
}

func TestBuild_WineRegionMatchRequiresCountry(t *testing.T) {
	// Same region name in a different country must not satisfy the wine.
	region := &model.Region{ID: 1, Name: "Victoria", Country: "Australia"}
	wine := &model.Wine{ID: 1, Name: "Victoria Red", Country: "Canada", Region: "Victoria", Type: "Red"}

	_, err := Build(nil, []*model.Wine{wine}, []*model.Region{region}, nil)
	assert.ErrorIs(t, err, ErrUnresolvedWineRegion)
}

func TestBuild_UnresolvedWineFailsBuild(t *testing.T) {
	wine := &model.Wine{ID: 1, Name: "Orphan", Country: "France", Region: "Nowhere", Type: "Red"}

	c, err := Build(nil, []*model.Wine{wine}, nil, nil)
	assert.ErrorIs(t, err, ErrUnresolvedWineRegion)
	assert.Contains(t, err.Error(), "Orphan")
	assert.Nil(t, c)
}

func TestBuild_DuplicateRegionKeyFirstWins(t *testing.T) {
	first := &model.Region{ID: 1, Name: "Rioja", Country: "Spain", Rating: 4.5}
	second := &model.Region{ID: 2, Name: "Rioja", Country: "Spain", Rating: 3.0}
	wine := &model.Wine{ID: 1, Name: "Rioja Gran Reserva", Country: "Spain", Region: "Rioja", Type: "Red"}

	_, err := Build(nil, []*model.Wine{wine}, []*model.Region{first, second}, nil)
	require.NoError(t, err)

	require.Len(t, wine.RegionList, 1)
	assert.Same(t, first, wine.RegionList[0].Region)
}

func TestBuild_VineyardRegionAssociation(t *testing.T) {
	douro := &model.Region{ID: 1, Name: "Douro", Country: "Portugal"}
	alentejo := &model.Region{ID: 2, Name: "Alentejo", Country: "Portugal"}
	vineyard := &model.Vineyard{
		ID: 1, Name: "Quinta do Vale", Country: "Portugal",
		RegionNames: []string{"Douro", "Alentejo", "Unknown"},
	}
	loner := &model.Vineyard{ID: 2, Name: "No Claims", Country: "Portugal"}

	_, err := Build(nil, nil, []*model.Region{douro, alentejo}, []*model.Vineyard{vineyard, loner})
	require.NoError(t, err)

	require.Len(t, vineyard.RegionList, 2)
	assert.Same(t, douro, vineyard.RegionList[0].Region)
	assert.Same(t, alentejo, vineyard.RegionList[1].Region)
	assert.Empty(t, loner.RegionList)
}

func TestBuild_VineyardMatchesRegionNameAcrossCountries(t *testing.T) {
	// Vineyard membership is by region name alone, so every region carrying
	// the claimed name links, regardless of country.
	fr := &model.Region{ID: 1, Name: "Highlands", Country: "France"}
	au := &model.Region{ID: 2, Name: "Highlands", Country: "Australia"}
	vineyard := &model.Vineyard{ID: 1, Name: "Hilltop", Country: "France", RegionNames: []string{"Highlands"}}

	_, err := Build(nil, nil, []*model.Region{fr, au}, []*model.Vineyard{vineyard})
	require.NoError(t, err)

	assert.Len(t, vineyard.RegionList, 2)
}

func TestBuild_WineVineyardAssociation(t *testing.T) {
	mosel := &model.Region{ID: 1, Name: "Mosel", Country: "Germany"}
	claiming := &model.Vineyard{ID: 1, Name: "Steep Slopes", Country: "Germany", RegionNames: []string{"Mosel"}}
	other := &model.Vineyard{ID: 2, Name: "Elsewhere", Country: "Germany", RegionNames: []string{"Rheingau"}}
	wine := &model.Wine{ID: 1, Name: "Riesling Kabinett", Country: "Germany", Region: "Mosel", Type: "White"}

	_, err := Build(nil, []*model.Wine{wine}, []*model.Region{mosel}, []*model.Vineyard{claiming, other})
	require.NoError(t, err)

	require.Len(t, wine.VineyardList, 1)
	assert.Same(t, claiming, wine.VineyardList[0].Vineyard)
}

func TestBuild_PostWineAssignment(t *testing.T) {
	region := &model.Region{ID: 1, Name: "Napa Valley", Country: "United States"}
	red1 := &model.Wine{ID: 1, Name: "Cab One", Country: "United States", Region: "Napa Valley", Type: "Red"}
	red2 := &model.Wine{ID: 2, Name: "Cab Two", Country: "United States", Region: "Napa Valley", Type: "Red"}
	white := &model.Wine{ID: 3, Name: "Chard", Country: "United States", Region: "Napa Valley", Type: "White"}
	redPost := &model.Post{ID: 1, WineType: "Red", URLs: []string{"https://example.com/a"}}
	rosePost := &model.Post{ID: 2, WineType: "Rosé"}

	c, err := Build([]*model.Post{redPost, rosePost}, []*model.Wine{red1, red2, white}, []*model.Region{region}, nil)
	require.NoError(t, err)

	assert.Equal(t, []*model.Wine{red1, red2}, redPost.Wines)
	assert.Empty(t, rosePost.Wines)

	posts := c.PostsForWineType("Red")
	require.Len(t, posts, 1)
	assert.Same(t, redPost, posts[0])
}

func TestBuild_Lookups(t *testing.T) {
	region := &model.Region{ID: 7, Name: "Stellenbosch", Country: "South Africa"}
	vineyard := &model.Vineyard{ID: 9, Name: "Cape Estate", Country: "South Africa"}
	wine := &model.Wine{ID: 3, Name: "Pinotage", Country: "South Africa", Region: "Stellenbosch", Type: "Red"}

	c, err := Build(nil, []*model.Wine{wine}, []*model.Region{region}, []*model.Vineyard{vineyard})
	require.NoError(t, err)

	got, ok := c.WineByID(3)
	require.True(t, ok)
	assert.Same(t, wine, got)

	gotRegion, ok := c.RegionByID(7)
	require.True(t, ok)
	assert.Same(t, region, gotRegion)

	gotVineyard, ok := c.VineyardByID(9)
	require.True(t, ok)
	assert.Same(t, vineyard, gotVineyard)

	_, ok = c.WineByID(999)
	assert.False(t, ok)
}

func TestHolder_SwapPublishesNewSnapshot(t *testing.T) {
	first, err := Build(nil, nil, nil, nil)
	require.NoError(t, err)
	second, err := Build(nil, nil, nil, nil)
	require.NoError(t, err)

	holder := NewHolder(first)
	assert.Same(t, first, holder.Current())

	holder.Swap(second)
	assert.Same(t, second, holder.Current())
	assert.NotEqual(t, first.BuildID, second.BuildID)
}

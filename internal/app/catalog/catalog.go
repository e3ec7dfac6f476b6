package catalog

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/wineworld/wineworld-backend/internal/app/model"
)

// Catalog is one immutable build of the entity collections and their
// resolved associations. Once constructed it is shared read-only across
// requests; a rebuild produces a fresh Catalog and swaps it in wholesale.
type Catalog struct {
	BuildID uuid.UUID
	BuiltAt time.Time

	Posts     []*model.Post
	Wines     []*model.Wine
	Regions   []*model.Region
	Vineyards []*model.Vineyard

	winesByID     map[uint]*model.Wine
	regionsByID   map[uint]*model.Region
	vineyardsByID map[uint]*model.Vineyard
	postsByType   map[string][]*model.Post
}

// WineByID looks a wine up by its store-assigned identifier.
func (c *Catalog) WineByID(id uint) (*model.Wine, bool) {
	w, ok := c.winesByID[id]
	return w, ok
}

// RegionByID looks a region up by its store-assigned identifier.
func (c *Catalog) RegionByID(id uint) (*model.Region, bool) {
	r, ok := c.regionsByID[id]
	return r, ok
}

// VineyardByID looks a vineyard up by its store-assigned identifier.
func (c *Catalog) VineyardByID(id uint) (*model.Vineyard, bool) {
	v, ok := c.vineyardsByID[id]
	return v, ok
}

// PostsForWineType returns the posts grouped under the given wine type, in
// post input order.
func (c *Catalog) PostsForWineType(wineType string) []*model.Post {
	return c.postsByType[wineType]
}

// Holder publishes the current catalog to the query pipeline. Swap is atomic
// so readers never observe a partially built graph.
type Holder struct {
	current atomic.Pointer[Catalog]
}

func NewHolder(c *Catalog) *Holder {
	h := &Holder{}
	h.current.Store(c)
	return h
}

// Current returns the catalog snapshot serving queries right now.
func (h *Holder) Current() *Catalog {
	return h.current.Load()
}

// Swap replaces the served catalog with a freshly built one.
func (h *Holder) Swap(c *Catalog) {
	h.current.Store(c)
}

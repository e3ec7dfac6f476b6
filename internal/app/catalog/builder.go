package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wineworld/wineworld-backend/internal/app/model"
	"github.com/wineworld/wineworld-backend/pkg/logger"
)

// ErrUnresolvedWineRegion is returned when a wine's (country, region) labels
// match no region. The catalog must not serve a wine without a region, so a
// build that hits this aborts.
var ErrUnresolvedWineRegion = errors.New("wine resolves to no region")

type regionKey struct {
	country string
	name    string
}

// Build reconstructs the relational graph between the freshly loaded entity
// collections by attribute matching and returns the resulting immutable
// snapshot. The source data carries no foreign keys; all relations come from
// label matching:
//
//   - wine -> region: unique (country, name) match, build-fatal if absent
//   - vineyard -> region: region name listed in the vineyard's RegionNames
//   - wine -> vineyard: vineyard's RegionNames contains the wine's region
//   - post -> wines: wines whose type equals the post's wine type
//
// Build mutates the relation lists embedded in the given records, so callers
// must pass freshly loaded collections, never ones from a served catalog.
func Build(posts []*model.Post, wines []*model.Wine, regions []*model.Region, vineyards []*model.Vineyard) (*Catalog, error) {
	start := time.Now()

	regionsByKey := make(map[regionKey]*model.Region, len(regions))
	regionsByName := make(map[string][]*model.Region)
	for _, region := range regions {
		key := regionKey{country: region.Country, name: region.Name}
		if _, exists := regionsByKey[key]; exists {
			logger.Warn("Duplicate region (country, name) pair, first occurrence wins", map[string]interface{}{
				"country": region.Country,
				"name":    region.Name,
			})
		} else {
			regionsByKey[key] = region
		}
		regionsByName[region.Name] = append(regionsByName[region.Name], region)
	}

	vineyardsByRegionName := make(map[string][]*model.Vineyard)
	for _, vineyard := range vineyards {
		for _, name := range vineyard.RegionNames {
			vineyardsByRegionName[name] = append(vineyardsByRegionName[name], vineyard)
		}
	}

	winesByType := make(map[string][]*model.Wine)
	for _, wine := range wines {
		winesByType[wine.Type] = append(winesByType[wine.Type], wine)
	}

	wineRegionCount := 0
	wineVineyardCount := 0
	for _, wine := range wines {
		region, ok := regionsByKey[regionKey{country: wine.Country, name: wine.Region}]
		if !ok {
			return nil, fmt.Errorf("%w: wine %q (country %q, region %q)",
				ErrUnresolvedWineRegion, wine.Name, wine.Country, wine.Region)
		}
		wine.RegionList = append(wine.RegionList, model.WineRegionAssociation{Region: region})
		wineRegionCount++

		for _, vineyard := range vineyardsByRegionName[wine.Region] {
			wine.VineyardList = append(wine.VineyardList, model.WineVineyardAssociation{Vineyard: vineyard})
			wineVineyardCount++
		}
	}

	vineyardRegionCount := 0
	for _, vineyard := range vineyards {
		for _, name := range vineyard.RegionNames {
			for _, region := range regionsByName[name] {
				vineyard.RegionList = append(vineyard.RegionList, model.VineyardRegionAssociation{Region: region})
				vineyardRegionCount++
			}
		}
	}

	postWineCount := 0
	for _, post := range posts {
		post.Wines = winesByType[post.WineType]
		postWineCount += len(post.Wines)
	}

	c := &Catalog{
		BuildID:       uuid.New(),
		BuiltAt:       time.Now(),
		Posts:         posts,
		Wines:         wines,
		Regions:       regions,
		Vineyards:     vineyards,
		winesByID:     make(map[uint]*model.Wine, len(wines)),
		regionsByID:   make(map[uint]*model.Region, len(regions)),
		vineyardsByID: make(map[uint]*model.Vineyard, len(vineyards)),
		postsByType:   make(map[string][]*model.Post, len(posts)),
	}
	for _, wine := range wines {
		c.winesByID[wine.ID] = wine
	}
	for _, region := range regions {
		c.regionsByID[region.ID] = region
	}
	for _, vineyard := range vineyards {
		c.vineyardsByID[vineyard.ID] = vineyard
	}
	for _, post := range posts {
		c.postsByType[post.WineType] = append(c.postsByType[post.WineType], post)
	}

	logger.Info("Catalog built", map[string]interface{}{
		"build_id":              c.BuildID.String(),
		"posts":                 len(posts),
		"wines":                 len(wines),
		"regions":               len(regions),
		"vineyards":             len(vineyards),
		"wine_region_links":     wineRegionCount,
		"wine_vineyard_links":   wineVineyardCount,
		"vineyard_region_links": vineyardRegionCount,
		"post_wine_links":       postWineCount,
		"duration_ms":           time.Since(start).Milliseconds(),
	})

	return c, nil
}

package service

import (
	"errors"

	"github.com/wineworld/wineworld-backend/internal/app/catalog"
	"github.com/wineworld/wineworld-backend/internal/app/query"
	"github.com/wineworld/wineworld-backend/pkg/logger"
)

var ErrWineNotFound = errors.New("wine not found")

type WineListOptions struct {
	Criteria query.WineCriteria
	Sort     string
	Page     int
}

type WineListResponse struct {
	Length         int           `json:"length"`
	List           []WineSummary `json:"list"`
	Page           int           `json:"page"`
	TotalPages     int           `json:"totalPages"`
	TotalInstances int           `json:"totalInstances"`
}

type WineRelated struct {
	Regions   []RegionSummary   `json:"regions"`
	Vineyards []VineyardSummary `json:"vineyards"`
}

type WineDetail struct {
	WineSummary
	RedditPosts []string    `json:"redditPosts"`
	Related     WineRelated `json:"related"`
}

type WineLimits struct {
	Rating    RangeFloat         `json:"rating"`
	Reviews   RangeInt           `json:"reviews"`
	Countries []string           `json:"countries"`
	Types     []string           `json:"types"`
	Sorts     []query.SortMethod `json:"sorts"`
}

type WineService interface {
	ListWines(opts WineListOptions) WineListResponse
	GetWineByID(id uint) (*WineDetail, error)
	GetWineLimits() WineLimits
}

type wineService struct {
	catalogs *catalog.Holder
	pageSize int
}

func NewWineService(catalogs *catalog.Holder, pageSize int) WineService {
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	return &wineService{catalogs: catalogs, pageSize: pageSize}
}

func (s *wineService) ListWines(opts WineListOptions) WineListResponse {
	snapshot := s.catalogs.Current()

	filtered := query.FilterWines(snapshot.Wines, opts.Criteria)
	sorted := query.SortWines(filtered, opts.Sort)
	page := query.Paginate(sorted, opts.Page, s.pageSize)

	logger.Debug("Wines listed", map[string]interface{}{
		"matched": page.TotalInstances,
		"page":    page.Number,
		"sort":    opts.Sort,
	})

	return WineListResponse{
		Length:         len(page.Items),
		List:           wineSummaries(page.Items),
		Page:           page.Number,
		TotalPages:     page.TotalPages,
		TotalInstances: page.TotalInstances,
	}
}

func (s *wineService) GetWineByID(id uint) (*WineDetail, error) {
	snapshot := s.catalogs.Current()

	wine, ok := snapshot.WineByID(id)
	if !ok {
		logger.Warn("Wine not found", map[string]interface{}{
			"wine_id": id,
		})
		return nil, ErrWineNotFound
	}

	detail := &WineDetail{
		WineSummary: newWineSummary(wine),
		RedditPosts: []string{},
		Related: WineRelated{
			Regions:   []RegionSummary{},
			Vineyards: []VineyardSummary{},
		},
	}

	for _, post := range snapshot.PostsForWineType(wine.Type) {
		detail.RedditPosts = append(detail.RedditPosts, post.URLs...)
	}
	for _, assoc := range wine.RegionList {
		detail.Related.Regions = append(detail.Related.Regions, newRegionSummary(assoc.Region))
	}
	for _, assoc := range wine.VineyardList {
		detail.Related.Vineyards = append(detail.Related.Vineyards, newVineyardSummary(assoc.Vineyard))
	}

	return detail, nil
}

func (s *wineService) GetWineLimits() WineLimits {
	snapshot := s.catalogs.Current()

	limits := WineLimits{
		Countries: []string{},
		Types:     []string{},
		Sorts:     query.WineSortMethods(),
	}

	countries := make([]string, 0, len(snapshot.Wines))
	types := make([]string, 0, len(snapshot.Wines))
	for i, wine := range snapshot.Wines {
		if i == 0 {
			limits.Rating = RangeFloat{Min: wine.Rating, Max: wine.Rating}
			limits.Reviews = RangeInt{Min: wine.Reviews, Max: wine.Reviews}
		}
		if wine.Rating < limits.Rating.Min {
			limits.Rating.Min = wine.Rating
		}
		if wine.Rating > limits.Rating.Max {
			limits.Rating.Max = wine.Rating
		}
		if wine.Reviews < limits.Reviews.Min {
			limits.Reviews.Min = wine.Reviews
		}
		if wine.Reviews > limits.Reviews.Max {
			limits.Reviews.Max = wine.Reviews
		}
		countries = append(countries, wine.Country)
		types = append(types, wine.Type)
	}

	limits.Countries = uniqueSorted(countries, query.SortStrings)
	limits.Types = uniqueSorted(types, query.SortStrings)
	return limits
}

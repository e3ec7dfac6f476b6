package service

import (
	"errors"

	"github.com/wineworld/wineworld-backend/internal/app/catalog"
	"github.com/wineworld/wineworld-backend/internal/app/query"
	"github.com/wineworld/wineworld-backend/pkg/logger"
)

var ErrVineyardNotFound = errors.New("vineyard not found")

type VineyardListOptions struct {
	Criteria query.VineyardCriteria
	Sort     string
	Page     int
}

type VineyardListResponse struct {
	Length         int               `json:"length"`
	List           []VineyardSummary `json:"list"`
	Page           int               `json:"page"`
	TotalPages     int               `json:"totalPages"`
	TotalInstances int               `json:"totalInstances"`
}

type VineyardRelated struct {
	Regions []RegionSummary `json:"regions"`
	Wines   []WineSummary   `json:"wines"`
}

type VineyardDetail struct {
	VineyardSummary
	Coordinates Coordinates     `json:"coordinates"`
	Related     VineyardRelated `json:"related"`
}

type VineyardLimits struct {
	Rating    RangeFloat         `json:"rating"`
	Reviews   RangeInt           `json:"reviews"`
	Price     RangeInt           `json:"price"`
	Countries []string           `json:"countries"`
	Sorts     []query.SortMethod `json:"sorts"`
}

type VineyardService interface {
	ListVineyards(opts VineyardListOptions) VineyardListResponse
	GetVineyardByID(id uint) (*VineyardDetail, error)
	GetVineyardLimits() VineyardLimits
}

type vineyardService struct {
	catalogs *catalog.Holder
	pageSize int
}

func NewVineyardService(catalogs *catalog.Holder, pageSize int) VineyardService {
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	return &vineyardService{catalogs: catalogs, pageSize: pageSize}
}

func (s *vineyardService) ListVineyards(opts VineyardListOptions) VineyardListResponse {
	snapshot := s.catalogs.Current()

	filtered := query.FilterVineyards(snapshot.Vineyards, opts.Criteria)
	sorted := query.SortVineyards(filtered, opts.Sort)
	page := query.Paginate(sorted, opts.Page, s.pageSize)

	logger.Debug("Vineyards listed", map[string]interface{}{
		"matched": page.TotalInstances,
		"page":    page.Number,
		"sort":    opts.Sort,
	})

	return VineyardListResponse{
		Length:         len(page.Items),
		List:           vineyardSummaries(page.Items),
		Page:           page.Number,
		TotalPages:     page.TotalPages,
		TotalInstances: page.TotalInstances,
	}
}

func (s *vineyardService) GetVineyardByID(id uint) (*VineyardDetail, error) {
	snapshot := s.catalogs.Current()

	vineyard, ok := snapshot.VineyardByID(id)
	if !ok {
		logger.Warn("Vineyard not found", map[string]interface{}{
			"vineyard_id": id,
		})
		return nil, ErrVineyardNotFound
	}

	detail := &VineyardDetail{
		VineyardSummary: newVineyardSummary(vineyard),
		Coordinates: Coordinates{
			Latitude:  vineyard.Latitude,
			Longitude: vineyard.Longitude,
		},
		Related: VineyardRelated{
			Regions: []RegionSummary{},
			Wines:   []WineSummary{},
		},
	}

	for _, assoc := range vineyard.RegionList {
		detail.Related.Regions = append(detail.Related.Regions, newRegionSummary(assoc.Region))
	}
	for _, wine := range snapshot.Wines {
		for _, assoc := range wine.VineyardList {
			if assoc.Vineyard == vineyard {
				detail.Related.Wines = append(detail.Related.Wines, newWineSummary(wine))
				break
			}
		}
	}

	return detail, nil
}

func (s *vineyardService) GetVineyardLimits() VineyardLimits {
	snapshot := s.catalogs.Current()

	limits := VineyardLimits{
		Countries: []string{},
		Sorts:     query.VineyardSortMethods(),
	}

	var countries []string
	for i, vineyard := range snapshot.Vineyards {
		if i == 0 {
			limits.Rating = RangeFloat{Min: vineyard.Rating, Max: vineyard.Rating}
			limits.Reviews = RangeInt{Min: vineyard.Reviews, Max: vineyard.Reviews}
			limits.Price = RangeInt{Min: vineyard.Price, Max: vineyard.Price}
		}
		if vineyard.Rating < limits.Rating.Min {
			limits.Rating.Min = vineyard.Rating
		}
		if vineyard.Rating > limits.Rating.Max {
			limits.Rating.Max = vineyard.Rating
		}
		if vineyard.Reviews < limits.Reviews.Min {
			limits.Reviews.Min = vineyard.Reviews
		}
		if vineyard.Reviews > limits.Reviews.Max {
			limits.Reviews.Max = vineyard.Reviews
		}
		if vineyard.Price < limits.Price.Min {
			limits.Price.Min = vineyard.Price
		}
		if vineyard.Price > limits.Price.Max {
			limits.Price.Max = vineyard.Price
		}
		countries = append(countries, vineyard.Country)
	}

	limits.Countries = uniqueSorted(countries, query.SortStrings)
	return limits
}

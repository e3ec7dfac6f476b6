package service

import (
	"errors"

	"github.com/wineworld/wineworld-backend/internal/app/catalog"
	"github.com/wineworld/wineworld-backend/internal/app/query"
	"github.com/wineworld/wineworld-backend/pkg/logger"
)

var ErrRegionNotFound = errors.New("region not found")

type RegionListOptions struct {
	Criteria query.RegionCriteria
	Sort     string
	Page     int
}

type RegionListResponse struct {
	Length         int             `json:"length"`
	List           []RegionSummary `json:"list"`
	Page           int             `json:"page"`
	TotalPages     int             `json:"totalPages"`
	TotalInstances int             `json:"totalInstances"`
}

type RegionRelated struct {
	Vineyards []VineyardSummary `json:"vineyards"`
	Wines     []WineSummary     `json:"wines"`
}

type RegionDetail struct {
	RegionSummary
	Coordinates Coordinates   `json:"coordinates"`
	Related     RegionRelated `json:"related"`
}

type RegionLimits struct {
	Rating    RangeFloat         `json:"rating"`
	Reviews   RangeInt           `json:"reviews"`
	Tags      []string           `json:"tags"`
	TripTypes []string           `json:"tripTypes"`
	Countries []string           `json:"countries"`
	Sorts     []query.SortMethod `json:"sorts"`
}

type RegionService interface {
	ListRegions(opts RegionListOptions) RegionListResponse
	GetRegionByID(id uint) (*RegionDetail, error)
	GetRegionLimits() RegionLimits
}

type regionService struct {
	catalogs *catalog.Holder
	pageSize int
}

func NewRegionService(catalogs *catalog.Holder, pageSize int) RegionService {
	if pageSize < 1 {
		pageSize = query.DefaultPageSize
	}
	return &regionService{catalogs: catalogs, pageSize: pageSize}
}

func (s *regionService) ListRegions(opts RegionListOptions) RegionListResponse {
	snapshot := s.catalogs.Current()

	filtered := query.FilterRegions(snapshot.Regions, opts.Criteria)
	sorted := query.SortRegions(filtered, opts.Sort)
	page := query.Paginate(sorted, opts.Page, s.pageSize)

	logger.Debug("Regions listed", map[string]interface{}{
		"matched": page.TotalInstances,
		"page":    page.Number,
		"sort":    opts.Sort,
	})

	return RegionListResponse{
		Length:         len(page.Items),
		List:           regionSummaries(page.Items),
		Page:           page.Number,
		TotalPages:     page.TotalPages,
		TotalInstances: page.TotalInstances,
	}
}

func (s *regionService) GetRegionByID(id uint) (*RegionDetail, error) {
	snapshot := s.catalogs.Current()

	region, ok := snapshot.RegionByID(id)
	if !ok {
		logger.Warn("Region not found", map[string]interface{}{
			"region_id": id,
		})
		return nil, ErrRegionNotFound
	}

	detail := &RegionDetail{
		RegionSummary: newRegionSummary(region),
		Coordinates: Coordinates{
			Latitude:  region.Latitude,
			Longitude: region.Longitude,
		},
		Related: RegionRelated{
			Vineyards: []VineyardSummary{},
			Wines:     []WineSummary{},
		},
	}

	// Region is the association target, so the owning entities are scanned
	// for links pointing back at it.
	for _, vineyard := range snapshot.Vineyards {
		for _, assoc := range vineyard.RegionList {
			if assoc.Region == region {
				detail.Related.Vineyards = append(detail.Related.Vineyards, newVineyardSummary(vineyard))
				break
			}
		}
	}
	for _, wine := range snapshot.Wines {
		for _, assoc := range wine.RegionList {
			if assoc.Region == region {
				detail.Related.Wines = append(detail.Related.Wines, newWineSummary(wine))
				break
			}
		}
	}

	return detail, nil
}

func (s *regionService) GetRegionLimits() RegionLimits {
	snapshot := s.catalogs.Current()

	limits := RegionLimits{
		Tags:      []string{},
		TripTypes: []string{},
		Countries: []string{},
		Sorts:     query.RegionSortMethods(),
	}

	var countries, tags, tripTypes []string
	for i, region := range snapshot.Regions {
		if i == 0 {
			limits.Rating = RangeFloat{Min: region.Rating, Max: region.Rating}
			limits.Reviews = RangeInt{Min: region.Reviews, Max: region.Reviews}
		}
		if region.Rating < limits.Rating.Min {
			limits.Rating.Min = region.Rating
		}
		if region.Rating > limits.Rating.Max {
			limits.Rating.Max = region.Rating
		}
		if region.Reviews < limits.Reviews.Min {
			limits.Reviews.Min = region.Reviews
		}
		if region.Reviews > limits.Reviews.Max {
			limits.Reviews.Max = region.Reviews
		}
		countries = append(countries, region.Country)
		tags = append(tags, region.Tags...)
		tripTypes = append(tripTypes, region.TripTypes...)
	}

	limits.Countries = uniqueSorted(countries, query.SortStrings)
	limits.Tags = uniqueSorted(tags, query.SortStrings)
	limits.TripTypes = uniqueSorted(tripTypes, query.SortStrings)
	return limits
}

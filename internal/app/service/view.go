package service

import "github.com/wineworld/wineworld-backend/internal/app/model"

// View types shared by the list and detail responses. Summaries carry only
// flattened scalar attributes; detail views add the related-entity block
// resolved from the catalog's association graph.

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ImageInfo struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type RangeFloat struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type RangeInt struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type WineSummary struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Region  string  `json:"region"`
	Winery  string  `json:"winery"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Type    string  `json:"type"`
	Image   string  `json:"image"`
}

type RegionSummary struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Rating    float64   `json:"rating"`
	Reviews   int       `json:"reviews"`
	Tags      []string  `json:"tags"`
	TripTypes []string  `json:"tripTypes"`
	URL       string    `json:"url"`
	Image     ImageInfo `json:"image"`
}

type VineyardSummary struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Price   int     `json:"price"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Image   string  `json:"image"`
	URL     string  `json:"url"`
}

func newWineSummary(w *model.Wine) WineSummary {
	return WineSummary{
		ID:      w.ID,
		Name:    w.Name,
		Country: w.Country,
		Region:  w.Region,
		Winery:  w.Winery,
		Rating:  w.Rating,
		Reviews: w.Reviews,
		Type:    w.Type,
		Image:   w.Image,
	}
}

func newRegionSummary(r *model.Region) RegionSummary {
	return RegionSummary{
		ID:        r.ID,
		Name:      r.Name,
		Country:   r.Country,
		Rating:    r.Rating,
		Reviews:   r.Reviews,
		Tags:      append([]string{}, r.Tags...),
		TripTypes: append([]string{}, r.TripTypes...),
		URL:       r.URL,
		Image: ImageInfo{
			URL:    r.Image,
			Width:  r.ImageWidth,
			Height: r.ImageHeight,
		},
	}
}

func newVineyardSummary(v *model.Vineyard) VineyardSummary {
	return VineyardSummary{
		ID:      v.ID,
		Name:    v.Name,
		Country: v.Country,
		Price:   v.Price,
		Rating:  v.Rating,
		Reviews: v.Reviews,
		Image:   v.Image,
		URL:     v.URL,
	}
}

func wineSummaries(wines []*model.Wine) []WineSummary {
	summaries := make([]WineSummary, 0, len(wines))
	for _, w := range wines {
		summaries = append(summaries, newWineSummary(w))
	}
	return summaries
}

func regionSummaries(regions []*model.Region) []RegionSummary {
	summaries := make([]RegionSummary, 0, len(regions))
	for _, r := range regions {
		summaries = append(summaries, newRegionSummary(r))
	}
	return summaries
}

func vineyardSummaries(vineyards []*model.Vineyard) []VineyardSummary {
	summaries := make([]VineyardSummary, 0, len(vineyards))
	for _, v := range vineyards {
		summaries = append(summaries, newVineyardSummary(v))
	}
	return summaries
}

// uniqueSorted collapses values to a unique vocabulary and orders it with
// locale-aware collation for the limits endpoints.
func uniqueSorted(values []string, sortFn func([]string) []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	return sortFn(unique)
}

package model

import "github.com/lib/pq"

// Vineyard is one catalog vineyard record. RegionNames lists the region-name
// labels the vineyard claims membership in; it can be empty.
type Vineyard struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Country     string         `gorm:"type:varchar(100);not null" json:"country"`
	Price       int            `json:"price"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Image       string         `gorm:"type:varchar(512)" json:"image"`
	URL         string         `gorm:"type:varchar(512)" json:"url"`
	Longitude   float64        `json:"longitude"`
	Latitude    float64        `json:"latitude"`
	RegionNames pq.StringArray `gorm:"type:text[]" json:"regionNames"`

	// Associations resolved by the catalog builder; never persisted.
	RegionList []VineyardRegionAssociation `gorm:"-" json:"-"`
}

func (Vineyard) TableName() string {
	return "vineyards"
}

// VineyardRegionAssociation links a vineyard to one region named in its
// RegionNames. Zero or more exist per vineyard.
type VineyardRegionAssociation struct {
	Region *Region
}

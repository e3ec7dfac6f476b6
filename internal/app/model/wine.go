package model

// Wine is one catalog wine record. Region and Country are free-text labels
// matched against Region records at build time; they are not foreign keys.
type Wine struct {
	ID      uint    `gorm:"primarykey" json:"id"`
	Name    string  `gorm:"type:varchar(255);not null" json:"name"`
	Country string  `gorm:"type:varchar(100);not null" json:"country"`
	Region  string  `gorm:"type:varchar(100);not null" json:"region"`
	Winery  string  `gorm:"type:varchar(255)" json:"winery"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Type    string  `gorm:"type:varchar(50)" json:"type"`
	Image   string  `gorm:"type:varchar(512)" json:"image"`

	// Associations resolved by the catalog builder; never persisted.
	RegionList   []WineRegionAssociation   `gorm:"-" json:"-"`
	VineyardList []WineVineyardAssociation `gorm:"-" json:"-"`
}

func (Wine) TableName() string {
	return "wines"
}

// WineRegionAssociation links a wine to the region whose (country, name)
// matches the wine's (country, region) labels. Exactly one exists per wine.
type WineRegionAssociation struct {
	Region *Region
}

// WineVineyardAssociation links a wine to a vineyard that claims the wine's
// region label. Zero or more exist per wine.
type WineVineyardAssociation struct {
	Vineyard *Vineyard
}

package model

import "github.com/lib/pq"

// Region is one catalog wine region record. Tags and TripTypes are unordered
// label sets; filtering on them is set containment.
type Region struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(100);not null" json:"name"`
	Country     string         `gorm:"type:varchar(100);not null" json:"country"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Longitude   float64        `json:"longitude"`
	Latitude    float64        `json:"latitude"`
	URL         string         `gorm:"type:varchar(512)" json:"url"`
	Image       string         `gorm:"type:varchar(512)" json:"image"`
	ImageWidth  int            `json:"imageWidth"`
	ImageHeight int            `json:"imageHeight"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	TripTypes   pq.StringArray `gorm:"type:text[]" json:"tripTypes"`
}

func (Region) TableName() string {
	return "regions"
}

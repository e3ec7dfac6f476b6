package model

import "github.com/lib/pq"

// Post is one community post group, keyed by wine type rather than a public
// numeric id. URLs keeps the source ordering of the collected links.
type Post struct {
	ID       uint           `gorm:"primarykey" json:"-"`
	WineType string         `gorm:"type:varchar(50);not null" json:"wineType"`
	URLs     pq.StringArray `gorm:"type:text[]" json:"urls"`

	// Wines whose type matches WineType; assigned wholesale by the catalog
	// builder, never persisted.
	Wines []*Wine `gorm:"-" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

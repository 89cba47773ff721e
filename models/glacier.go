package models

import "time"

// Glacier outlines come from the RGI inventory; geometry is mandatory and
// spatially indexed since every project detail request runs a containment
// query against it.
type Glacier struct {
	GlacierID string  `gorm:"primaryKey;size:255"`
	Name      *string `gorm:"size:255"`
	Geometry  string  `gorm:"type:geometry(MultiPolygon,4326);not null"`
	AreaM2    *float64
	CreatedAt time.Time

	SnowData []GlacierSnowData `gorm:"foreignKey:GlacierID;references:GlacierID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Glacier) TableName() string { return "glacier" }

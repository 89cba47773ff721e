package models

import "time"

// Project is an area of interest under monitoring. The AOI is stored as a
// PostGIS multipolygon in EPSG:4326; reads go through ST_AsGeoJSON so the
// raw column value never leaves the database layer.
type Project struct {
	ProjectID   string  `gorm:"primaryKey;size:255"`
	Name        string  `gorm:"size:255;not null"`
	Description *string `gorm:"size:1024"`
	// Nullable: a project may be registered before its AOI is drawn.
	AreaOfInterest *string `gorm:"type:geometry(MultiPolygon,4326)"`
	CreatedAt      time.Time
}

func (Project) TableName() string { return "project" }

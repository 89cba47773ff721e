package models

import "time"

// GlacierSnowData is one (glacier, scene) observation produced by an analysis
// run. Rows are immutable once created.
type GlacierSnowData struct {
	ID                 string `gorm:"primaryKey;size:64"`
	AnalysisID         string `gorm:"index;size:64"`
	GlacierID          string `gorm:"index;size:255"`
	SceneID            string `gorm:"index;size:255"`
	SnowAreaM2         *float64
	SnowlineElevationM *float64
	CreatedAt          time.Time
}

func (GlacierSnowData) TableName() string { return "glacier_snow_data" }

// GlaciersAnalysisResult aggregates one analysis run over a scene. It owns its
// snow-data rows; deleting a result cascades to them.
type GlaciersAnalysisResult struct {
	ID                     string    `gorm:"primaryKey;size:64"`
	SceneID                string    `gorm:"index;size:255"`
	AnalysisDate           time.Time `gorm:"not null"`
	SnowAreaM2             float64   `gorm:"not null"`
	TotalGlacierSnowAreaM2 float64   `gorm:"not null"`
	CreatedAt              time.Time

	Glaciers []GlacierSnowData `gorm:"foreignKey:AnalysisID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (GlaciersAnalysisResult) TableName() string { return "glacier_analysis_result" }

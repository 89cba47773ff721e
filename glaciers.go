package main

import (
	"errors"
	"fmt"
	"time"

	"glacierwatch/models"

	"gorm.io/gorm"
)

type glacierDetailRow struct {
	GlacierID       string   `gorm:"column:glacier_id"`
	Name            *string  `gorm:"column:name"`
	AreaM2          *float64 `gorm:"column:area_m2"`
	GeometryGeoJSON *string  `gorm:"column:geometry_geojson"`
}

func fetchGlacierDetail(glacierID string) (*glacierDetailRow, error) {
	var row glacierDetailRow
	err := db.Model(&models.Glacier{}).
		Select("glacier_id, name, area_m2, ST_AsGeoJSON(geometry) AS geometry_geojson").
		Where("glacier_id = ?", glacierID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("glacier %s: %w", glacierID, errNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// fetchGlacierArea returns the stored glacier area, nil when the glacier does
// not exist or its area is NULL.
func fetchGlacierArea(glacierID string) (*float64, error) {
	var rows []*float64
	err := db.Model(&models.Glacier{}).
		Where("glacier_id = ?", glacierID).
		Limit(1).
		Pluck("area_m2", &rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}

type timeseriesRow struct {
	AcquisitionDate    time.Time `gorm:"column:acquisition_date"`
	SnowAreaM2         *float64  `gorm:"column:snow_area_m2"`
	SnowlineElevationM *float64  `gorm:"column:snowline_elevation_m"`
}

// fetchGlacierTimeseries joins each observation with its scene's acquisition
// date, in creation order.
func fetchGlacierTimeseries(glacierID string) ([]timeseriesRow, error) {
	var rows []timeseriesRow
	err := db.Model(&models.GlacierSnowData{}).
		Select("scene.acquisition_date, glacier_snow_data.snow_area_m2, glacier_snow_data.snowline_elevation_m").
		Joins("JOIN scene ON glacier_snow_data.scene_id = scene.scene_id").
		Where("glacier_snow_data.glacier_id = ?", glacierID).
		Order("glacier_snow_data.created_at").
		Scan(&rows).Error
	return rows, err
}

type timeseriesPoint struct {
	AcquisitionDate    time.Time `json:"acquisition_date"`
	SnowAreaM2         *float64  `json:"snow_area_m2"`
	SnowAreaFraction   *float64  `json:"snow_area_fraction"`
	SnowlineElevationM *float64  `json:"snowline_elevation_m"`
}

var errZeroGlacierArea = errors.New("glacier area is zero")

// buildTimeseries computes snow_area_fraction = snow_area_m2 / areaM2 per
// observation. A zero area would divide out to Inf, so it is rejected here;
// callers treat a missing or zero area as the glacier not being usable.
func buildTimeseries(rows []timeseriesRow, areaM2 float64) ([]timeseriesPoint, error) {
	if areaM2 == 0 {
		return nil, errZeroGlacierArea
	}
	points := make([]timeseriesPoint, 0, len(rows))
	for _, r := range rows {
		p := timeseriesPoint{
			AcquisitionDate:    r.AcquisitionDate,
			SnowAreaM2:         r.SnowAreaM2,
			SnowlineElevationM: r.SnowlineElevationM,
		}
		if r.SnowAreaM2 != nil {
			frac := *r.SnowAreaM2 / areaM2
			p.SnowAreaFraction = &frac
		}
		points = append(points, p)
	}
	return points, nil
}

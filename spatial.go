package main

import (
	"sort"
	"strings"

	"glacierwatch/models"
	"glacierwatch/pkg/geo"
)

// The spatial predicates all run inside PostGIS: ST_Within for containment
// (not ST_Intersects — a glacier straddling the AOI boundary is excluded),
// ST_Extent for bounding boxes and ST_PointOnSurface for map pins, which is
// guaranteed to land on the geometry even for concave outlines where the
// centroid would not.

type projectsExtentRow struct {
	MinLon *float64 `gorm:"column:min_lon"`
	MinLat *float64 `gorm:"column:min_lat"`
	MaxLon *float64 `gorm:"column:max_lon"`
	MaxLat *float64 `gorm:"column:max_lat"`
}

// fetchProjectsExtent aggregates the bounding box across every project AOI.
// With no geometries the aggregate yields NULLs and the caller gets nil bounds.
func fetchProjectsExtent() (projectsExtentRow, error) {
	var row projectsExtentRow
	err := db.Model(&models.Project{}).
		Select(`ST_XMin(ST_Extent(area_of_interest)) AS min_lon,
			ST_YMin(ST_Extent(area_of_interest)) AS min_lat,
			ST_XMax(ST_Extent(area_of_interest)) AS max_lon,
			ST_YMax(ST_Extent(area_of_interest)) AS max_lat`).
		Where("area_of_interest IS NOT NULL").
		Scan(&row).Error
	return row, err
}

type glacierRow struct {
	GlacierID    string  `gorm:"column:glacier_id"`
	Name         *string `gorm:"column:name"`
	PointGeoJSON *string `gorm:"column:point_geojson"`
}

// fetchGlaciersWithinProject returns glaciers fully contained in the
// project's AOI. A NULL AOI makes the predicate NULL, so no rows come back.
func fetchGlaciersWithinProject(projectID string) ([]glacierRow, error) {
	var rows []glacierRow
	err := db.Model(&models.Glacier{}).
		Select("glacier_id, name, ST_AsGeoJSON(ST_PointOnSurface(geometry)) AS point_geojson").
		Where("ST_Within(geometry, (SELECT area_of_interest FROM project WHERE project_id = ?))", projectID).
		Scan(&rows).Error
	return rows, err
}

type glacierListItem struct {
	GlacierID string      `json:"glacier_id"`
	Name      *string     `json:"name"`
	Point     *geo.LatLng `json:"point"`
}

// glacierListItems converts rows for display: representative point reordered
// to lat/lng, sorted by name case-insensitively with unnamed glaciers last
// and ties broken by id.
func glacierListItems(rows []glacierRow) ([]glacierListItem, error) {
	sort.SliceStable(rows, func(i, j int) bool {
		return lessGlacierRow(rows[i], rows[j])
	})
	items := make([]glacierListItem, 0, len(rows))
	for _, r := range rows {
		pt, err := geo.PointToLatLng(strOrEmpty(r.PointGeoJSON))
		if err != nil {
			return nil, err
		}
		items = append(items, glacierListItem{GlacierID: r.GlacierID, Name: r.Name, Point: pt})
	}
	return items, nil
}

func lessGlacierRow(a, b glacierRow) bool {
	if (a.Name == nil) != (b.Name == nil) {
		return b.Name == nil
	}
	if a.Name != nil && b.Name != nil {
		an, bn := strings.ToLower(*a.Name), strings.ToLower(*b.Name)
		if an != bn {
			return an < bn
		}
	}
	return a.GlacierID < b.GlacierID
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

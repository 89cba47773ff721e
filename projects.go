package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"glacierwatch/models"
	"glacierwatch/pkg/geo"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type projectListRow struct {
	ProjectID     string  `gorm:"column:project_id"`
	Name          string  `gorm:"column:name"`
	CenterGeoJSON *string `gorm:"column:center_geojson"`
}

func fetchProjects() ([]projectListRow, error) {
	var rows []projectListRow
	err := db.Model(&models.Project{}).
		Select("project_id, name, ST_AsGeoJSON(ST_PointOnSurface(area_of_interest)) AS center_geojson").
		Scan(&rows).Error
	return rows, err
}

type projectDetailRow struct {
	ProjectID     string   `gorm:"column:project_id"`
	Name          string   `gorm:"column:name"`
	Description   *string  `gorm:"column:description"`
	AOIGeoJSON    *string  `gorm:"column:aoi_geojson"`
	CenterGeoJSON *string  `gorm:"column:center_geojson"`
	MinLon        *float64 `gorm:"column:min_lon"`
	MinLat        *float64 `gorm:"column:min_lat"`
	MaxLon        *float64 `gorm:"column:max_lon"`
	MaxLat        *float64 `gorm:"column:max_lat"`
}

func fetchProjectDetail(projectID string) (*projectDetailRow, error) {
	var row projectDetailRow
	err := db.Model(&models.Project{}).
		Select(`project_id, name, description,
			ST_AsGeoJSON(area_of_interest) AS aoi_geojson,
			ST_AsGeoJSON(ST_PointOnSurface(area_of_interest)) AS center_geojson,
			ST_XMin(area_of_interest) AS min_lon,
			ST_YMin(area_of_interest) AS min_lat,
			ST_XMax(area_of_interest) AS max_lon,
			ST_YMax(area_of_interest) AS max_lat`).
		Where("project_id = ?", projectID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("project %s: %w", projectID, errNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func projectExists(projectID string) (bool, error) {
	var count int64
	err := db.Model(&models.Project{}).Where("project_id = ?", projectID).Count(&count).Error
	return count > 0, err
}

// projectConfig is the per-project artifact the discovery and processing
// workers read from the project's raw folder.
type projectConfig struct {
	ProjectID          string   `yaml:"project_id"`
	Bands              []string `yaml:"bands"`
	MinCoveragePercent int      `yaml:"min_coverage_percent"`
}

const defaultMinCoveragePercent = 60

// createProject provisions the project's data folder plus config.yaml, then
// inserts the row. Folder and database are two resources with no shared
// transaction; on insert failure the folder is removed best-effort, and only
// if this call created it.
func createProject(projectID, name string, description *string, aoi *geo.Geometry, bands []string) error {
	folder := filepath.Join(cfg.DataDir, "raw", projectID)
	created := false
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		created = true
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("provision folder for project %s: %w", projectID, err)
	}
	if err := writeProjectConfig(folder, projectConfig{
		ProjectID:          projectID,
		Bands:              bands,
		MinCoveragePercent: defaultMinCoveragePercent,
	}); err != nil {
		if created {
			cleanupProjectFolder(folder, projectID)
		}
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		p := models.Project{
			ProjectID:   projectID,
			Name:        name,
			Description: description,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if aoi != nil {
			aoiJSON, err := json.Marshal(aoi)
			if err != nil {
				return err
			}
			// ST_Multi so a plain Polygon AOI fits the multipolygon column
			return tx.Exec(
				"UPDATE project SET area_of_interest = ST_Multi(ST_GeomFromGeoJSON(?)) WHERE project_id = ?",
				string(aoiJSON), projectID,
			).Error
		}
		return nil
	})
	if err != nil {
		if created {
			cleanupProjectFolder(folder, projectID)
		}
		return fmt.Errorf("insert project %s: %w", projectID, err)
	}
	return nil
}

func writeProjectConfig(folder string, pc projectConfig) error {
	out, err := yaml.Marshal(pc)
	if err != nil {
		return fmt.Errorf("serialize config for project %s: %w", pc.ProjectID, err)
	}
	path := filepath.Join(folder, "config.yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config for project %s: %w", pc.ProjectID, err)
	}
	return nil
}

func cleanupProjectFolder(folder, projectID string) {
	if err := os.RemoveAll(folder); err != nil {
		logger.Warnw("failed to roll back project folder", "project_id", projectID, "folder", folder, "error", err)
	}
}

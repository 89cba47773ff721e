package main

import (
	"errors"
	"fmt"
	"time"

	"glacierwatch/models"

	"gorm.io/gorm"
)

type sceneListRow struct {
	SceneID         string             `gorm:"column:scene_id" json:"scene_id"`
	AcquisitionDate time.Time          `gorm:"column:acquisition_date" json:"acquisition_date"`
	Status          models.SceneStatus `gorm:"column:status" json:"status"`
}

func fetchScenesByProject(projectID string, limit, offset int) ([]sceneListRow, error) {
	var rows []sceneListRow
	err := db.Model(&models.Scene{}).
		Select("scene_id, acquisition_date, status").
		Where("project_id = ?", projectID).
		Order("acquisition_date DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

func countScenesByProject(projectID string) (int64, error) {
	var count int64
	err := db.Model(&models.Scene{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

func fetchScene(sceneID string) (*models.Scene, error) {
	var scene models.Scene
	err := db.Where("scene_id = ?", sceneID).Take(&scene).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("scene %s: %w", sceneID, errNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &scene, nil
}

// setSceneStatus overwrites the status unconditionally; enum membership is
// checked by the caller via ParseSceneStatus. GORM touches updated_at.
func setSceneStatus(scene *models.Scene, status models.SceneStatus) error {
	return db.Model(scene).Update("status", status).Error
}

package main

import (
	"net/http"

	"glacierwatch/models"

	"github.com/gin-gonic/gin"
)

func getSceneHandler(c *gin.Context) {
	sceneID := c.Param("scene_id")
	scene, err := fetchScene(sceneID)
	if err != nil {
		abortWithError(c, err, "scene_id", sceneID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"scene_id":            scene.SceneID,
		"project_id":          scene.ProjectID,
		"acquisition_date":    scene.AcquisitionDate,
		"status":              scene.Status,
		"attempts_download":   scene.AttemptsDownload,
		"attempts_processing": scene.AttemptsProcessing,
		"last_error":          scene.LastError,
	})
}

func patchSceneStatusHandler(c *gin.Context) {
	sceneID := c.Param("scene_id")
	status, err := models.ParseSceneStatus(c.Param("new_status"))
	if err != nil {
		abortWithError(c, err, "scene_id", sceneID)
		return
	}
	scene, err := fetchScene(sceneID)
	if err != nil {
		abortWithError(c, err, "scene_id", sceneID)
		return
	}
	if err := setSceneStatus(scene, status); err != nil {
		abortWithError(c, err, "scene_id", sceneID, "new_status", status)
		return
	}
	logger.Infow("updated scene status", "scene_id", sceneID, "status", status)
	c.JSON(http.StatusOK, gin.H{
		"scene_id": scene.SceneID,
		"status":   status,
	})
}

package main

import "github.com/gin-gonic/gin"

func setupRoutes(r *gin.Engine) {
	r.GET("/project", listProjectsHandler)
	r.GET("/project/:project_id", getProjectHandler)
	r.POST("/project", createProjectHandler)

	r.GET("/glacier/:glacier_id", getGlacierHandler)
	r.GET("/glacier/:glacier_id/timeseries", getGlacierTimeseriesHandler)

	r.GET("/scene/:scene_id", getSceneHandler)
	sceneAuth := r.Group("", apiKeyMiddleware())
	sceneAuth.PATCH("/scene/:scene_id/status/:new_status", patchSceneStatusHandler)

	data := r.Group("/data")
	data.GET("/raw", listRawRootHandler)
	data.GET("/raw/:project_id", listRawProjectHandler)
	data.GET("/raw/:project_id/:folder", listRawFolderHandler)
	data.DELETE("/raw/:project_id/:folder", deleteRawFolderHandler)
	data.GET("/result", listResultRootHandler)
	data.GET("/result/:project_id", listResultProjectHandler)
	data.GET("/result/:project_id/:folder", listResultFolderHandler)
	data.GET("/result/:project_id/:folder/:file", downloadResultFileHandler)
}

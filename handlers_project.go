package main

import (
	"net/http"
	"strconv"

	"glacierwatch/pkg/geo"

	"github.com/gin-gonic/gin"
)

type projectListItem struct {
	ProjectID string      `json:"project_id"`
	Name      string      `json:"name"`
	Point     *geo.LatLng `json:"point"`
}

func listProjectsHandler(c *gin.Context) {
	rows, err := fetchProjects()
	if err != nil {
		abortWithError(c, err)
		return
	}
	extent, err := fetchProjectsExtent()
	if err != nil {
		abortWithError(c, err)
		return
	}
	projects := make([]projectListItem, 0, len(rows))
	for _, r := range rows {
		pt, err := geo.PointToLatLng(strOrEmpty(r.CenterGeoJSON))
		if err != nil {
			abortWithError(c, err, "project_id", r.ProjectID)
			return
		}
		projects = append(projects, projectListItem{ProjectID: r.ProjectID, Name: r.Name, Point: pt})
	}
	logger.Infow("listed projects", "count", len(projects))
	c.JSON(http.StatusOK, gin.H{
		"projects":   projects,
		"map_bounds": geo.BoundsFromExtents(extent.MinLat, extent.MinLon, extent.MaxLat, extent.MaxLon),
	})
}

func getProjectHandler(c *gin.Context) {
	projectID := c.Param("project_id")
	limit := intQuery(c, "limit", 100)
	offset := intQuery(c, "offset", 0)

	row, err := fetchProjectDetail(projectID)
	if err != nil {
		abortWithError(c, err, "project_id", projectID)
		return
	}
	aoi, err := geo.Parse(strOrEmpty(row.AOIGeoJSON))
	if err != nil {
		abortWithError(c, err, "project_id", projectID)
		return
	}
	center, err := geo.PointToLatLng(strOrEmpty(row.CenterGeoJSON))
	if err != nil {
		abortWithError(c, err, "project_id", projectID)
		return
	}
	bounds := geo.BoundsFromExtents(row.MinLat, row.MinLon, row.MaxLat, row.MaxLon)

	glacierRows, err := fetchGlaciersWithinProject(projectID)
	if err != nil {
		abortWithError(c, err, "project_id", projectID)
		return
	}
	glaciers, err := glacierListItems(glacierRows)
	if err != nil {
		abortWithError(c, err, "project_id", projectID)
		return
	}
	scenes, err := fetchScenesByProject(projectID, limit, offset)
	if err != nil {
		abortWithError(c, err, "project_id", projectID)
		return
	}
	total, err := countScenesByProject(projectID)
	if err != nil {
		abortWithError(c, err, "project_id", projectID)
		return
	}
	logger.Infow("fetched project details", "project_id", projectID,
		"glaciers", len(glaciers), "scenes", len(scenes), "scene_total", total)

	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.JSON(http.StatusOK, gin.H{
		"project": gin.H{
			"project_id":  row.ProjectID,
			"name":        row.Name,
			"description": row.Description,
			"aoi":         aoi,
			"glaciers":    glaciers,
			"scenes":      scenes,
		},
		"map_center":        center,
		"map_bounds":        bounds,
		"scene_total_count": total,
	})
}

func createProjectHandler(c *gin.Context) {
	var req struct {
		ProjectID   string        `json:"project_id" binding:"required"`
		Name        string        `json:"name" binding:"required"`
		Description *string       `json:"description"`
		AOI         *geo.Geometry `json:"aoi"`
		Bands       []string      `json:"bands" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AOI != nil && req.AOI.Type != "Polygon" && req.AOI.Type != "MultiPolygon" {
		abortWithError(c, geo.ErrMalformedGeometry, "project_id", req.ProjectID, "aoi_type", req.AOI.Type)
		return
	}
	exists, err := projectExists(req.ProjectID)
	if err != nil {
		abortWithError(c, err, "project_id", req.ProjectID)
		return
	}
	if exists {
		abortWithError(c, errConflict, "project_id", req.ProjectID)
		return
	}
	if err := createProject(req.ProjectID, req.Name, req.Description, req.AOI, req.Bands); err != nil {
		abortWithError(c, err, "project_id", req.ProjectID)
		return
	}
	logger.Infow("created project", "project_id", req.ProjectID, "bands", req.Bands)
	c.JSON(http.StatusOK, gin.H{"project_id": req.ProjectID})
}

func intQuery(c *gin.Context, name string, def int) int {
	v := c.Query(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

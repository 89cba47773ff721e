package main

import (
	"net/http"

	"glacierwatch/pkg/geo"

	"github.com/gin-gonic/gin"
)

func getGlacierHandler(c *gin.Context) {
	glacierID := c.Param("glacier_id")
	row, err := fetchGlacierDetail(glacierID)
	if err != nil {
		abortWithError(c, err, "glacier_id", glacierID)
		return
	}
	geometry, err := geo.Parse(strOrEmpty(row.GeometryGeoJSON))
	if err != nil {
		abortWithError(c, err, "glacier_id", glacierID)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"glacier_id": row.GlacierID,
		"name":       row.Name,
		"area_m2":    row.AreaM2,
		"geometry":   geometry,
	})
}

func getGlacierTimeseriesHandler(c *gin.Context) {
	glacierID := c.Param("glacier_id")
	area, err := fetchGlacierArea(glacierID)
	if err != nil {
		abortWithError(c, err, "glacier_id", glacierID)
		return
	}
	// A missing or zero area makes the snow fraction undefined, so the
	// glacier is treated as absent rather than risking a division blow-up.
	if area == nil || *area == 0 {
		abortWithError(c, errNotFound, "glacier_id", glacierID, "reason", "no usable area")
		return
	}
	rows, err := fetchGlacierTimeseries(glacierID)
	if err != nil {
		abortWithError(c, err, "glacier_id", glacierID)
		return
	}
	points, err := buildTimeseries(rows, *area)
	if err != nil {
		abortWithError(c, err, "glacier_id", glacierID)
		return
	}
	logger.Infow("fetched glacier timeseries", "glacier_id", glacierID, "points", len(points))
	c.JSON(http.StatusOK, gin.H{
		"glacier_id": glacierID,
		"timeseries": points,
	})
}

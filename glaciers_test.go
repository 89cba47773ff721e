package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glacierwatch/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatp(v float64) *float64 { return &v }

func TestBuildTimeseriesFraction(t *testing.T) {
	rows := []timeseriesRow{
		{AcquisitionDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), SnowAreaM2: floatp(50), SnowlineElevationM: floatp(1200)},
		{AcquisitionDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), SnowAreaM2: nil},
	}

	points, err := buildTimeseries(rows, 200)
	require.NoError(t, err)
	require.Len(t, points, 2)
	require.NotNil(t, points[0].SnowAreaFraction)
	assert.Equal(t, 0.25, *points[0].SnowAreaFraction)
	assert.Nil(t, points[1].SnowAreaFraction)
}

func TestBuildTimeseriesZeroArea(t *testing.T) {
	_, err := buildTimeseries(nil, 0)
	assert.ErrorIs(t, err, errZeroGlacierArea)
}

func seedTimeseriesGlacier(t *testing.T, glacierID string, areaM2 *float64) {
	t.Helper()
	require.NoError(t, db.Exec(
		"INSERT INTO glacier (glacier_id, name, geometry, area_m2, created_at) VALUES (?, ?, ?, ?, ?)",
		glacierID, "Engabreen", "MULTIPOLYGON EMPTY", areaM2, time.Now(),
	).Error)
}

func TestGlacierTimeseriesEndpoint(t *testing.T) {
	r := setupTestServer(t)

	seedTimeseriesGlacier(t, "G1", floatp(1000))
	acq := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Scene{
		SceneID:         "S1",
		ProjectID:       "P1",
		Status:          models.StatusProcessed,
		AcquisitionDate: acq,
	}).Error)
	require.NoError(t, db.Create(&models.GlacierSnowData{
		ID:                 uuid.NewString(),
		AnalysisID:         uuid.NewString(),
		GlacierID:          "G1",
		SceneID:            "S1",
		SnowAreaM2:         floatp(250),
		SnowlineElevationM: floatp(1100),
	}).Error)

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/glacier/G1/timeseries", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		GlacierID  string            `json:"glacier_id"`
		Timeseries []timeseriesPoint `json:"timeseries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "G1", resp.GlacierID)
	require.Len(t, resp.Timeseries, 1)
	require.NotNil(t, resp.Timeseries[0].SnowAreaFraction)
	assert.Equal(t, 0.25, *resp.Timeseries[0].SnowAreaFraction)
}

func TestGlacierTimeseriesNoUsableArea(t *testing.T) {
	r := setupTestServer(t)

	seedTimeseriesGlacier(t, "G-null", nil)
	seedTimeseriesGlacier(t, "G-zero", floatp(0))

	for _, id := range []string{"G-null", "G-zero", "G-missing"} {
		rec := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/glacier/"+id+"/timeseries", nil)
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

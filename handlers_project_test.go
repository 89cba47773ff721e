package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateProjectEndpoint(t *testing.T) {
	r := setupTestServer(t)

	rec := postJSON(t, r, "/project", map[string]any{
		"project_id": "P1",
		"name":       "Jotunheimen",
		"bands":      []string{"B04", "B08"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, err := os.Stat(filepath.Join(cfg.DataDir, "raw", "P1", "config.yaml"))
	assert.NoError(t, err)

	exists, err := projectExists("P1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCreateProjectDuplicate(t *testing.T) {
	r := setupTestServer(t)

	body := map[string]any{
		"project_id": "P1",
		"name":       "Jotunheimen",
		"bands":      []string{"B04"},
	}
	require.Equal(t, http.StatusOK, postJSON(t, r, "/project", body).Code)
	assert.Equal(t, http.StatusBadRequest, postJSON(t, r, "/project", body).Code)
}

func TestCreateProjectRequiresBands(t *testing.T) {
	r := setupTestServer(t)

	rec := postJSON(t, r, "/project", map[string]any{
		"project_id": "P1",
		"name":       "Jotunheimen",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, r, "/project", map[string]any{
		"project_id": "P1",
		"name":       "Jotunheimen",
		"bands":      []string{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProjectRejectsNonPolygonAOI(t *testing.T) {
	r := setupTestServer(t)

	rec := postJSON(t, r, "/project", map[string]any{
		"project_id": "P1",
		"name":       "Jotunheimen",
		"bands":      []string{"B04"},
		"aoi":        map[string]any{"type": "Point", "coordinates": []float64{10, 63}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// nothing half-created
	exists, err := projectExists("P1")
	require.NoError(t, err)
	assert.False(t, exists)
	_, statErr := os.Stat(filepath.Join(cfg.DataDir, "raw", "P1"))
	assert.True(t, os.IsNotExist(statErr))
}

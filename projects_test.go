package main

import (
	"os"
	"path/filepath"
	"testing"

	"glacierwatch/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCreateProjectProvisionsFolderAndConfig(t *testing.T) {
	setupTestDB(t)

	desc := "test project"
	require.NoError(t, createProject("P1", "Jotunheimen", &desc, nil, []string{"B04", "B08"}))

	var p models.Project
	require.NoError(t, db.Where("project_id = ?", "P1").Take(&p).Error)
	assert.Equal(t, "Jotunheimen", p.Name)

	folder := filepath.Join(cfg.DataDir, "raw", "P1")
	raw, err := os.ReadFile(filepath.Join(folder, "config.yaml"))
	require.NoError(t, err)

	var pc projectConfig
	require.NoError(t, yaml.Unmarshal(raw, &pc))
	assert.Equal(t, "P1", pc.ProjectID)
	assert.Equal(t, []string{"B04", "B08"}, pc.Bands)
	assert.Equal(t, 60, pc.MinCoveragePercent)
}

func TestCreateProjectRollsBackFolderOnInsertFailure(t *testing.T) {
	setupTestDB(t)

	// occupy the primary key so the insert below fails
	require.NoError(t, db.Create(&models.Project{ProjectID: "P2", Name: "existing"}).Error)

	err := createProject("P2", "duplicate", nil, nil, []string{"B04"})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(cfg.DataDir, "raw", "P2"))
	assert.True(t, os.IsNotExist(statErr), "folder should be rolled back")
}

func TestCreateProjectKeepsPreexistingFolder(t *testing.T) {
	setupTestDB(t)

	// workers may already have dropped files for this project id
	folder := filepath.Join(cfg.DataDir, "raw", "P3")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	require.NoError(t, db.Create(&models.Project{ProjectID: "P3", Name: "existing"}).Error)

	err := createProject("P3", "duplicate", nil, nil, []string{"B04"})
	require.Error(t, err)

	// the folder was not ours to delete
	_, statErr := os.Stat(folder)
	assert.NoError(t, statErr)
}

func TestProjectExists(t *testing.T) {
	setupTestDB(t)

	exists, err := projectExists("P1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, db.Create(&models.Project{ProjectID: "P1", Name: "x"}).Error)

	exists, err = projectExists("P1")
	require.NoError(t, err)
	assert.True(t, exists)
}

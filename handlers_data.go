package main

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"glacierwatch/pkg/datafs"

	"github.com/gin-gonic/gin"
)

// Folder browsing over the data root. The workers write downloads under
// raw/<project_id>/ and outputs under result/<project_id>/; these endpoints
// expose that tree read-only, plus one delete for reclaiming raw downloads.

func listRawRootHandler(c *gin.Context)    { listDataRoot(c, "raw") }
func listResultRootHandler(c *gin.Context) { listDataRoot(c, "result") }

func listRawProjectHandler(c *gin.Context) {
	listDataFolder(c, "raw", c.Param("project_id"))
}

func listRawFolderHandler(c *gin.Context) {
	listDataFolder(c, "raw", c.Param("project_id"), c.Param("folder"))
}

func listResultProjectHandler(c *gin.Context) {
	listDataFolder(c, "result", c.Param("project_id"))
}

func listResultFolderHandler(c *gin.Context) {
	listDataFolder(c, "result", c.Param("project_id"), c.Param("folder"))
}

// listDataRoot creates the top-level folder on demand so a fresh deployment
// lists empty instead of 404ing.
func listDataRoot(c *gin.Context, sub string) {
	dir := filepath.Join(cfg.DataDir, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		abortWithError(c, err, "dir", dir)
		return
	}
	respondFolder(c, dir)
}

func listDataFolder(c *gin.Context, sub string, parts ...string) {
	base := filepath.Join(cfg.DataDir, sub)
	dir, ok := datafs.ResolveUnder(base, parts...)
	if !ok {
		logger.Warnw("path traversal attempt", "sub", sub, "parts", parts)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}
	respondFolder(c, dir)
}

func respondFolder(c *gin.Context, dir string) {
	contents, size, err := datafs.FolderContents(dir)
	if errors.Is(err, fs.ErrNotExist) {
		abortWithError(c, errNotFound, "dir", dir)
		return
	}
	if err != nil {
		abortWithError(c, err, "dir", dir)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"contents": contents,
		"size":     datafs.ReadableBytes(size),
	})
}

func deleteRawFolderHandler(c *gin.Context) {
	projectID, folder := c.Param("project_id"), c.Param("folder")
	base := filepath.Join(cfg.DataDir, "raw")
	dir, ok := datafs.ResolveUnder(base, projectID, folder)
	if !ok {
		logger.Warnw("path traversal attempt", "project_id", projectID, "folder", folder)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		abortWithError(c, errNotFound, "project_id", projectID, "folder", folder)
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		abortWithError(c, err, "project_id", projectID, "folder", folder)
		return
	}
	logger.Infow("deleted raw folder", "project_id", projectID, "folder", folder)
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

func downloadResultFileHandler(c *gin.Context) {
	projectID, folder, file := c.Param("project_id"), c.Param("folder"), c.Param("file")
	base := filepath.Join(cfg.DataDir, "result")
	path, ok := datafs.ResolveUnder(base, projectID, folder, file)
	if !ok {
		logger.Warnw("path traversal attempt", "project_id", projectID, "folder", folder, "file", file)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file path"})
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		abortWithError(c, errNotFound, "project_id", projectID, "folder", folder, "file", file)
		return
	}
	logger.Infow("serving result file", "project_id", projectID, "folder", folder, "file", file)
	c.File(path)
}

// Package datafs backs the folder-browsing endpoints over the on-disk data
// root where the download/processing workers leave their files.
package datafs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FolderContents returns the immediate entry names of dir plus the total size
// in bytes of every regular file underneath it. A missing or non-directory
// path returns fs.ErrNotExist.
func FolderContents(dir string) ([]string, int64, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, 0, fs.ErrNotExist
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	var size int64
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			info, err := d.Info()
			if err != nil {
				return err
			}
			size += info.Size()
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return names, size, nil
}

// ReadableBytes formats a byte count for humans.
func ReadableBytes(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f PB", size)
}

// ResolveUnder joins parts onto base and verifies the cleaned result still
// lives under base. The second return is false on traversal attempts.
func ResolveUnder(base string, parts ...string) (string, bool) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", false
	}
	target, err := filepath.Abs(filepath.Join(append([]string{base}, parts...)...))
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absBase, target)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return target, true
}

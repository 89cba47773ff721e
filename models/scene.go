package models

import (
	"errors"
	"fmt"
	"time"
)

// SceneStatus tracks a satellite scene through the download/processing
// pipeline. The external workers drive the transitions; this service only
// validates enum membership, not transition legality.
type SceneStatus string

const (
	StatusDiscovered          SceneStatus = "discovered"
	StatusQueuedForDownload   SceneStatus = "queued_for_download"
	StatusDownloading         SceneStatus = "downloading"
	StatusDownloaded          SceneStatus = "downloaded"
	StatusFailedDownload      SceneStatus = "failed_download"
	StatusQueuedForProcessing SceneStatus = "queued_for_processing"
	StatusProcessing          SceneStatus = "processing"
	StatusProcessed           SceneStatus = "processed"
	StatusFailedProcessing    SceneStatus = "failed_processing"
)

// ErrUnknownStatus is returned when a status string is outside the enumerated set.
var ErrUnknownStatus = errors.New("unknown scene status")

var sceneStatuses = map[SceneStatus]struct{}{
	StatusDiscovered:          {},
	StatusQueuedForDownload:   {},
	StatusDownloading:         {},
	StatusDownloaded:          {},
	StatusFailedDownload:      {},
	StatusQueuedForProcessing: {},
	StatusProcessing:          {},
	StatusProcessed:           {},
	StatusFailedProcessing:    {},
}

// ParseSceneStatus validates enum membership. Any of the nine values is legal
// from any current status, so this is the only gate on the PATCH endpoint.
func ParseSceneStatus(s string) (SceneStatus, error) {
	st := SceneStatus(s)
	if _, ok := sceneStatuses[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// Scene is one satellite acquisition. Rows are created by the external
// discovery process in the discovered state; the attempt counters and
// last_error are written by the download/processing workers.
type Scene struct {
	SceneID            string `gorm:"primaryKey;size:255"`
	ProjectID          string `gorm:"index;size:255"`
	StacHref           string `gorm:"size:1024"`
	AcquisitionDate    time.Time
	Status             SceneStatus `gorm:"size:32;not null;index;default:'discovered'"`
	DownloadPath       *string     `gorm:"size:1024"`
	ResultPath         *string     `gorm:"size:1024"`
	AttemptsDownload   int         `gorm:"default:0"`
	AttemptsProcessing int         `gorm:"default:0"`
	LastError          *string     `gorm:"size:2048"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Scene) TableName() string { return "scene" }

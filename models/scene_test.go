package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSceneStatusAcceptsAllNine(t *testing.T) {
	for _, s := range []string{
		"discovered",
		"queued_for_download",
		"downloading",
		"downloaded",
		"failed_download",
		"queued_for_processing",
		"processing",
		"processed",
		"failed_processing",
	} {
		st, err := ParseSceneStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, SceneStatus(s), st)
	}
}

func TestParseSceneStatusRejectsUnknown(t *testing.T) {
	for _, s := range []string{"queued", "done", "DISCOVERED", ""} {
		_, err := ParseSceneStatus(s)
		assert.ErrorIs(t, err, ErrUnknownStatus, s)
	}
}

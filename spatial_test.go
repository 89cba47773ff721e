package main

import (
	"testing"

	"glacierwatch/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestGlacierListItemsSorting(t *testing.T) {
	rows := []glacierRow{
		{GlacierID: "G5", Name: nil},
		{GlacierID: "G3", Name: strp("svartisen")},
		{GlacierID: "G2", Name: strp("Engabreen")},
		{GlacierID: "G4", Name: strp("engabreen")},
		{GlacierID: "G1", Name: nil},
	}

	items, err := glacierListItems(rows)
	require.NoError(t, err)
	require.Len(t, items, 5)

	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.GlacierID
	}
	// names case-insensitively ascending, ties by id, unnamed last
	assert.Equal(t, []string{"G2", "G4", "G3", "G1", "G5"}, ids)
}

func TestGlacierListItemsPoint(t *testing.T) {
	rows := []glacierRow{
		{GlacierID: "G1", Name: strp("Engabreen"), PointGeoJSON: strp(`{"type":"Point","coordinates":[13.85,66.65]}`)},
		{GlacierID: "G2", Name: strp("Svartisen")},
	}

	items, err := glacierListItems(rows)
	require.NoError(t, err)
	require.NotNil(t, items[0].Point)
	assert.Equal(t, geo.LatLng{66.65, 13.85}, *items[0].Point)
	assert.Nil(t, items[1].Point)
}

func TestGlacierListItemsMalformedPoint(t *testing.T) {
	rows := []glacierRow{
		{GlacierID: "G1", PointGeoJSON: strp(`{"coordinates":[1]}`)},
	}
	_, err := glacierListItems(rows)
	assert.ErrorIs(t, err, geo.ErrMalformedGeometry)
}
